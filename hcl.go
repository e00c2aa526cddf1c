package cfgitems

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// hclModuleBlock is the block type that opens a module section:
//
//	multithreaded = true
//	module "server" {
//	  port = 8080
//	}
const hclModuleBlock = "module"

// decodeHCL parses HCL native syntax into the tree shape used by the other
// structured formats. Attributes that need an evaluation context are skipped.
func decodeHCL(path string, data []byte) (map[string]any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL config file '%s': %w", path, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is not HCL native syntax", ErrUnsupportedFormat, path)
	}

	tree := make(map[string]any)
	collectHCLAttributes(tree, body.Attributes)

	for _, block := range body.Blocks {
		if block.Type != hclModuleBlock || len(block.Labels) != 1 {
			continue
		}
		module := block.Labels[0]
		section, isMap := tree[module].(map[string]any)
		if !isMap {
			section = make(map[string]any)
			tree[module] = section
		}
		collectHCLAttributes(section, block.Body.Attributes)
	}

	return tree, nil
}

func collectHCLAttributes(dst map[string]any, attrs hclsyntax.Attributes) {
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			continue
		}
		if text, ok := ctyScalarText(val); ok {
			dst[name] = text
		}
	}
}

// ctyScalarText renders a primitive cty.Value as converter input.
// Whole numbers are rendered without exponent so integer items accept them.
func ctyScalarText(val cty.Value) (string, bool) {
	if !val.IsKnown() || val.IsNull() {
		return "", false
	}
	switch val.Type() {
	case cty.String:
		return val.AsString(), true
	case cty.Bool:
		return strconv.FormatBool(val.True()), true
	case cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int(nil)
			return i.String(), true
		}
		return bf.Text('g', -1), true
	}
	return "", false
}
