package cmd

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"rein-stock/core/rein"

	"github.com/spf13/cobra"
)

// signCmd prints the authentication headers for a path.
var signCmd = &cobra.Command{
	Use:   "sign <path>",
	Short: "Print signed request headers for an API path",
	Long: `Prints the Token, Database, Timestamp and ClientId headers for a request to
the given path, for use with curl or an API client. The path must not include
the query string.

Example:
  rein-stock sign /api/v1/produto`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadRuntime()
		if err != nil {
			return err
		}

		path := args[0]
		if i := strings.IndexByte(path, '?'); i >= 0 {
			path = path[:i]
		}

		signer := rein.NewSigner(cfg.Rein.ClientID, cfg.Rein.ClientSecret, cfg.Rein.Database)
		return writeHeaders(cmd.OutOrStdout(), signer.Headers(path, time.Now()))
	},
}

// writeHeaders prints headers one per line in key order.
func writeHeaders(w io.Writer, headers http.Header) error {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s: %s\n", k, strings.Join(headers[k], ",")); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	RootCmd.AddCommand(signCmd)
}
