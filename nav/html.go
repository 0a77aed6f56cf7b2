package nav

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BlockKind identifies how a text block is drawn.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockItem
)

// Block is one run of text extracted from a page fragment.
type Block struct {
	Kind BlockKind
	Text string
}

// ParseBlocks flattens an HTML fragment into drawable text blocks.
// Headings, paragraphs and list items become blocks; loose text becomes a
// paragraph. Scripts and styles are dropped.
func ParseBlocks(fragment string) []Block {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		// The tokenizer accepts any input; keep the raw text just in case.
		return []Block{{Kind: BlockParagraph, Text: collapse(fragment)}}
	}

	var blocks []Block
	for _, n := range nodes {
		blocks = appendBlocks(blocks, n)
	}
	return blocks
}

func appendBlocks(blocks []Block, n *html.Node) []Block {
	switch n.Type {
	case html.TextNode:
		if t := collapse(n.Data); t != "" {
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: t})
		}
		return blocks
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style:
			return blocks
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			return appendText(blocks, BlockHeading, n)
		case atom.P:
			return appendText(blocks, BlockParagraph, n)
		case atom.Li:
			return appendText(blocks, BlockItem, n)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		blocks = appendBlocks(blocks, c)
	}
	return blocks
}

func appendText(blocks []Block, kind BlockKind, n *html.Node) []Block {
	var sb strings.Builder
	collectText(&sb, n)
	if t := collapse(sb.String()); t != "" {
		blocks = append(blocks, Block{Kind: kind, Text: t})
	}
	return blocks
}

func collectText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && n.DataAtom == atom.Br {
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(sb, c)
	}
}

// collapse trims and folds runs of whitespace into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
