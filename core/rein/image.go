package rein

import (
	"sort"
	"strings"
)

// ImageBase builds the CDN prefix under which product images are published.
func ImageBase(cdnBase, database, version string) string {
	return strings.TrimRight(cdnBase, "/") + "/" + database + "/" + version + "/publico/imagem/produto/"
}

// coverImage resolves a variant's cover image URL.
// Images are ordered by display order (stable, missing order = 0) and the
// first one's file name is joined with base. No usable name means no URL.
func coverImage(base string, variant RawObject) string {
	images := variant.Objects("ProdutoImagem")
	if len(images) == 0 {
		return ""
	}

	sort.SliceStable(images, func(i, j int) bool {
		return displayOrder(images[i]) < displayOrder(images[j])
	})

	name := strings.TrimSpace(images[0].String("NomeImagem", "strNomeArquivo", "NomeArquivo"))
	name = strings.TrimLeft(name, "/")
	if name == "" {
		return ""
	}

	return base + name
}

// displayOrder reads the first non-zero numeric order. A non-numeric
// intOrdemExibicao counts as zero, so OrdemExibicao is consulted next.
func displayOrder(img RawObject) int {
	return img.Int("intOrdemExibicao", "OrdemExibicao")
}
