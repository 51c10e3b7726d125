package workspace

import (
	"bytes"
	"encoding/json"

	"github.com/Yunsang-Jeong/hclparse/pkg/hclsyntax"
)

// BlockSummary describes one block's shape: its type, its label values (in
// order, whichever Label kind produced them), and the attribute names it
// declares directly — never a Terraform resource/variable/provider model,
// deliberately, since that meaning is out of scope for this package.
type BlockSummary struct {
	Type       string         `json:"type"`
	Labels     []string       `json:"labels,omitempty"`
	Attributes []string       `json:"attributes,omitempty"`
	Blocks     []BlockSummary `json:"blocks,omitempty"`
}

// FileSummary is the generic shape of one parsed file: its top-level
// attribute names and its top-level blocks.
type FileSummary struct {
	File       string         `json:"file"`
	Attributes []string       `json:"attributes,omitempty"`
	Blocks     []BlockSummary `json:"blocks,omitempty"`
}

// Summary is the generic shape of every file in a Workspace.
type Summary struct {
	Files []FileSummary `json:"files"`
}

// Summarize walks every file's body and reports its block/attribute shape.
func (w *Workspace) Summarize() *Summary {
	s := &Summary{Files: make([]FileSummary, 0, len(w.Files))}
	for _, f := range w.Files {
		s.Files = append(s.Files, summarizeFile(f))
	}
	return s
}

func summarizeFile(f File) FileSummary {
	fs := FileSummary{File: f.Path}
	for _, el := range f.Config.Body {
		switch e := el.(type) {
		case *hclsyntax.Attribute:
			fs.Attributes = append(fs.Attributes, e.Name.Value)
		case *hclsyntax.Block:
			fs.Blocks = append(fs.Blocks, summarizeBlock(e.BlockType.Value, e.Labels, e.Bodies))
		case *hclsyntax.OneLineBlock:
			fs.Blocks = append(fs.Blocks, summarizeOneLineBlock(e))
		}
	}
	return fs
}

func summarizeBlock(blockType string, labels []hclsyntax.Label, bodies []hclsyntax.BodyElement) BlockSummary {
	bs := BlockSummary{Type: blockType, Labels: labelValues(labels)}
	for _, el := range bodies {
		switch e := el.(type) {
		case *hclsyntax.Attribute:
			bs.Attributes = append(bs.Attributes, e.Name.Value)
		case *hclsyntax.Block:
			bs.Blocks = append(bs.Blocks, summarizeBlock(e.BlockType.Value, e.Labels, e.Bodies))
		case *hclsyntax.OneLineBlock:
			bs.Blocks = append(bs.Blocks, summarizeOneLineBlock(e))
		}
	}
	return bs
}

func summarizeOneLineBlock(e *hclsyntax.OneLineBlock) BlockSummary {
	bs := BlockSummary{Type: e.BlockType.Value, Labels: labelValues(e.Labels)}
	if e.Attribute != nil {
		bs.Attributes = append(bs.Attributes, e.Attribute.Name.Value)
	}
	return bs
}

func labelValues(labels []hclsyntax.Label) []string {
	if len(labels) == 0 {
		return nil
	}
	values := make([]string, len(labels))
	for i, l := range labels {
		switch lbl := l.(type) {
		case *hclsyntax.Identifier:
			values[i] = lbl.Value
		case *hclsyntax.StringLiteral:
			values[i] = lbl.Value
		}
	}
	return values
}

// JSON renders the summary as JSON, optionally indented.
func (s *Summary) JSON(pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}
