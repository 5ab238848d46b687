package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"rein-stock/core/reconcile"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listFormat string

// listCmd prints the cached snapshot.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the cached stock list",
	Long:  `Prints the last synchronized snapshot ordered by product name and SKU. Does not contact the ERP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadRuntime()
		if err != nil {
			return err
		}
		cache, err := reconcile.NewFileCache(cfg.Sync.CachePath)
		if err != nil {
			return err
		}

		return writeItems(cmd.OutOrStdout(), listFormat, reconcile.Sorted(cache.Load()))
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "Output format: table, json or yaml")
	RootCmd.AddCommand(listCmd)
}

// itemView is the YAML shape of a cached item.
type itemView struct {
	SKU         string `yaml:"sku"`
	ProductName string `yaml:"product_name"`
	StockQty    int    `yaml:"stock_qty"`
	NCM         string `yaml:"ncm,omitempty"`
	ImageURL    string `yaml:"image_url,omitempty"`
}

func writeItems(w io.Writer, format string, items []reconcile.SnapshotEntry) error {
	switch format {
	case "", "table":
		return printItems(w, items)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "yaml":
		views := make([]itemView, 0, len(items))
		for _, e := range items {
			views = append(views, itemView{
				SKU:         e.SKU,
				ProductName: e.ProductName,
				StockQty:    e.StockQty,
				NCM:         e.NCM,
				ImageURL:    e.ImageURL,
			})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func printItems(w io.Writer, items []reconcile.SnapshotEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SKU\tPRODUCT\tSTOCK\tNCM")
	for _, e := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.SKU, e.ProductName, e.StockQty, e.NCM)
	}
	fmt.Fprintf(tw, "\n%d SKUs\n", len(items))
	return tw.Flush()
}
