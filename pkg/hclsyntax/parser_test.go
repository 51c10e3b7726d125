package hclsyntax

import (
	"strings"
	"testing"
)

func ptr[T any](v T) *T {
	return &v
}

func mustParse(t *testing.T, src string) *ConfigFile {
	t.Helper()
	cf, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return cf
}

func TestParseAttributeSimpleString(t *testing.T) {
	cf := mustParse(t, `attr = "value"`+"\n")
	if len(cf.Body) != 1 {
		t.Fatalf("expected 1 body element, got %d", len(cf.Body))
	}
	attr, ok := cf.Body[0].(*Attribute)
	if !ok {
		t.Fatalf("expected *Attribute, got %T", cf.Body[0])
	}
	if attr.Name.Value != "attr" {
		t.Fatalf("unexpected attribute name %q", attr.Name.Value)
	}
	tmpl, ok := attr.Value.(*QuotedTemplateExpression)
	if !ok {
		t.Fatalf("expected *QuotedTemplateExpression, got %T", attr.Value)
	}
	if len(tmpl.Parts) != 1 {
		t.Fatalf("expected 1 template part, got %d", len(tmpl.Parts))
	}
	lit, ok := tmpl.Parts[0].(*TemplateLiteral)
	if !ok {
		t.Fatalf("expected *TemplateLiteral, got %T", tmpl.Parts[0])
	}
	if lit.Value != "value" {
		t.Fatalf("unexpected literal value %q", lit.Value)
	}
}

func TestParseEmptyBlockIsBlockNotOneLine(t *testing.T) {
	cf := mustParse(t, `resource "aws_instance" "web" {}`+"\n")
	if len(cf.Body) != 1 {
		t.Fatalf("expected 1 body element, got %d", len(cf.Body))
	}
	block, ok := cf.Body[0].(*Block)
	if !ok {
		t.Fatalf("expected an empty block to parse as *Block, got %T", cf.Body[0])
	}
	if block.BlockType.Value != "resource" {
		t.Fatalf("unexpected block type %q", block.BlockType.Value)
	}
	if len(block.Labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(block.Labels))
	}
	if len(block.Bodies) != 0 {
		t.Fatalf("expected empty body, got %d elements", len(block.Bodies))
	}
}

func TestParseOneLineBlockWithAttribute(t *testing.T) {
	cf := mustParse(t, `locals { x = 1 }`+"\n")
	ol, ok := cf.Body[0].(*OneLineBlock)
	if !ok {
		t.Fatalf("expected *OneLineBlock, got %T", cf.Body[0])
	}
	if ol.Attribute == nil || ol.Attribute.Name.Value != "x" {
		t.Fatalf("unexpected one-line block attribute: %+v", ol.Attribute)
	}
}

func TestParseMultiLineBlockWithNestedBlock(t *testing.T) {
	src := "resource \"aws_instance\" \"web\" {\n" +
		"  ami = \"abc\"\n" +
		"  tags {\n" +
		"    env = \"prod\"\n" +
		"  }\n" +
		"}\n"
	cf := mustParse(t, src)
	block, ok := cf.Body[0].(*Block)
	if !ok {
		t.Fatalf("expected *Block, got %T", cf.Body[0])
	}
	if len(block.Bodies) != 2 {
		t.Fatalf("expected 2 body elements, got %d", len(block.Bodies))
	}
	if _, ok := block.Bodies[0].(*Attribute); !ok {
		t.Fatalf("expected first body element to be *Attribute, got %T", block.Bodies[0])
	}
	if _, ok := block.Bodies[1].(*Block); !ok {
		t.Fatalf("expected second body element to be *Block, got %T", block.Bodies[1])
	}
}

func TestParseBinaryExpressionRightLeaning(t *testing.T) {
	cf := mustParse(t, "attr = 1 + 2 * 3\n")
	attr := cf.Body[0].(*Attribute)
	add, ok := attr.Value.(*BinaryOperator)
	if !ok || add.Operator != "+" {
		t.Fatalf("expected top-level '+' BinaryOperator, got %#v", attr.Value)
	}
	if _, ok := add.Left.(*NumberLiteral); !ok {
		t.Fatalf("expected left operand to be a NumberLiteral, got %T", add.Left)
	}
	mul, ok := add.Right.(*BinaryOperator)
	if !ok || mul.Operator != "*" {
		t.Fatalf("expected right operand to be a '*' BinaryOperator, got %#v", add.Right)
	}
}

func TestParseSameOperatorChainIsRightLeaning(t *testing.T) {
	cf := mustParse(t, "attr = 1 + 2 + 3\n")
	attr := cf.Body[0].(*Attribute)
	outer, ok := attr.Value.(*BinaryOperator)
	if !ok || outer.Operator != "+" {
		t.Fatalf("expected a '+' BinaryOperator, got %#v", attr.Value)
	}
	if _, ok := outer.Left.(*NumberLiteral); !ok {
		t.Fatalf("expected left operand to be atomic, got %T", outer.Left)
	}
	inner, ok := outer.Right.(*BinaryOperator)
	if !ok || inner.Operator != "+" {
		t.Fatalf("expected right operand to itself be a '+' BinaryOperator (right-leaning), got %#v", outer.Right)
	}
}

func TestParseConditionalExpression(t *testing.T) {
	cf := mustParse(t, "attr = cond ? 1 : 2\n")
	attr := cf.Body[0].(*Attribute)
	cond, ok := attr.Value.(*ConditionalOperator)
	if !ok {
		t.Fatalf("expected *ConditionalOperator, got %T", attr.Value)
	}
	if _, ok := cond.Predicate.(*VariableExpression); !ok {
		t.Fatalf("expected predicate to be a *VariableExpression, got %T", cond.Predicate)
	}
}

func TestParsePostfixChain(t *testing.T) {
	cf := mustParse(t, "attr = var.foo[0].bar\n")
	attr := cf.Body[0].(*Attribute)
	getAttr, ok := attr.Value.(*GetAttributeOperator)
	if !ok || getAttr.Key.Value != "bar" {
		t.Fatalf("expected outer *GetAttributeOperator 'bar', got %#v", attr.Value)
	}
	idx, ok := getAttr.Target.(*IndexOperator)
	if !ok {
		t.Fatalf("expected *IndexOperator target, got %T", getAttr.Target)
	}
	inner, ok := idx.Target.(*GetAttributeOperator)
	if !ok || inner.Key.Value != "foo" {
		t.Fatalf("expected innermost *GetAttributeOperator 'foo', got %#v", idx.Target)
	}
}

func TestParseLegacyIndexOperator(t *testing.T) {
	cf := mustParse(t, "attr = var.foo.0\n")
	attr := cf.Body[0].(*Attribute)
	legacy, ok := attr.Value.(*LegacyIndexOperator)
	if !ok {
		t.Fatalf("expected *LegacyIndexOperator, got %T", attr.Value)
	}
	if legacy.Key.Value != 0 {
		t.Fatalf("unexpected legacy index key %v", legacy.Key.Value)
	}
}

func TestParseAttributeSplat(t *testing.T) {
	cf := mustParse(t, "attr = var.list.*.id\n")
	attr := cf.Body[0].(*Attribute)
	splat, ok := attr.Value.(*SplatOperator)
	if !ok || splat.Kind != SplatKindAttribute {
		t.Fatalf("expected attribute SplatOperator, got %#v", attr.Value)
	}
	if len(splat.Attributes) != 1 || splat.Attributes[0].Key.Value != "id" {
		t.Fatalf("unexpected splat attributes: %#v", splat.Attributes)
	}
}

func TestParseFullSplat(t *testing.T) {
	cf := mustParse(t, "attr = var.list[*].id\n")
	attr := cf.Body[0].(*Attribute)
	splat, ok := attr.Value.(*SplatOperator)
	if !ok || splat.Kind != SplatKindFull {
		t.Fatalf("expected full SplatOperator, got %#v", attr.Value)
	}
	if len(splat.Operations) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(splat.Operations))
	}
}

func TestParseFullSplatWithIndexStep(t *testing.T) {
	cf := mustParse(t, "attr = var.list[*][0]\n")
	attr := cf.Body[0].(*Attribute)
	splat, ok := attr.Value.(*SplatOperator)
	if !ok || splat.Kind != SplatKindFull {
		t.Fatalf("expected full SplatOperator, got %#v", attr.Value)
	}
	if len(splat.Operations) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(splat.Operations))
	}
	idx, ok := splat.Operations[0].(*IndexOperator)
	if !ok {
		t.Fatalf("expected an IndexOperator step, got %#v", splat.Operations[0])
	}
	if idx.Target != nil {
		t.Fatalf("expected a nil Target on a splat step, got %#v", idx.Target)
	}
}

func TestParseTupleAndObjectLiterals(t *testing.T) {
	cf := mustParse(t, "attr = [1, 2, 3]\n")
	tuple, ok := cf.Body[0].(*Attribute).Value.(*TupleValue)
	if !ok || len(tuple.Elements) != 3 {
		t.Fatalf("unexpected tuple value: %#v", cf.Body[0].(*Attribute).Value)
	}

	cf2 := mustParse(t, "attr = { a = 1, b = 2 }\n")
	obj, ok := cf2.Body[0].(*Attribute).Value.(*ObjectValue)
	if !ok || len(obj.Elements) != 2 {
		t.Fatalf("unexpected object value: %#v", cf2.Body[0].(*Attribute).Value)
	}
}

func TestParseForExpressions(t *testing.T) {
	cf := mustParse(t, "attr = [for k, v in var.m : v if v != null]\n")
	forExpr, ok := cf.Body[0].(*Attribute).Value.(*ForExpression)
	if !ok || forExpr.Kind != ForKindTuple {
		t.Fatalf("expected tuple ForExpression, got %#v", cf.Body[0].(*Attribute).Value)
	}
	if forExpr.Intro.Value == nil || forExpr.Intro.Value.Value != "v" {
		t.Fatalf("expected intro value 'v', got %#v", forExpr.Intro.Value)
	}
	if forExpr.Condition == nil {
		t.Fatalf("expected a condition")
	}

	cf2 := mustParse(t, "attr = {for k, v in var.m : k => v...}\n")
	forObj, ok := cf2.Body[0].(*Attribute).Value.(*ForExpression)
	if !ok || forObj.Kind != ForKindObject || !forObj.Grouping {
		t.Fatalf("expected grouped object ForExpression, got %#v", cf2.Body[0].(*Attribute).Value)
	}
}

func TestParseFunctionCall(t *testing.T) {
	cf := mustParse(t, `attr = upper("x")` + "\n")
	call, ok := cf.Body[0].(*Attribute).Value.(*FunctionCallExpression)
	if !ok || call.Name.Value != "upper" || len(call.Args) != 1 {
		t.Fatalf("unexpected call expression: %#v", cf.Body[0].(*Attribute).Value)
	}
}

func TestParseInterpolationAndHeredoc(t *testing.T) {
	cf := mustParse(t, `attr = "hello ${name}"`+"\n")
	tmpl := cf.Body[0].(*Attribute).Value.(*QuotedTemplateExpression)
	if len(tmpl.Parts) != 2 {
		t.Fatalf("expected 2 template parts, got %d", len(tmpl.Parts))
	}
	if _, ok := tmpl.Parts[1].(*TemplateInterpolation); !ok {
		t.Fatalf("expected second part to be *TemplateInterpolation, got %T", tmpl.Parts[1])
	}

	cf2 := mustParse(t, "attr = <<EOF\nhello\nEOF\n")
	hd := cf2.Body[0].(*Attribute).Value.(*HeredocTemplateExpression)
	if hd.Marker.Value != "EOF" {
		t.Fatalf("unexpected heredoc marker %q", hd.Marker.Value)
	}
	if len(hd.Template) != 1 {
		t.Fatalf("expected 1 template part, got %d", len(hd.Template))
	}
	lit, ok := hd.Template[0].(*TemplateLiteral)
	if !ok || lit.Value != "hello" {
		t.Fatalf("unexpected heredoc content: %#v", hd.Template[0])
	}
}

func TestParseTemplateIfDirective(t *testing.T) {
	cf := mustParse(t, `attr = "%{if cond}yes%{else}no%{endif}"`+"\n")
	tmpl := cf.Body[0].(*Attribute).Value.(*QuotedTemplateExpression)
	if len(tmpl.Parts) != 1 {
		t.Fatalf("expected 1 template part, got %d", len(tmpl.Parts))
	}
	tif, ok := tmpl.Parts[0].(*TemplateIf)
	if !ok {
		t.Fatalf("expected *TemplateIf, got %T", tmpl.Parts[0])
	}
	if tif.Else == nil {
		t.Fatalf("expected an else branch")
	}
}

func TestParseTemplateForDirective(t *testing.T) {
	cf := mustParse(t, `attr = "%{for x in list}${x}%{endfor}"`+"\n")
	tmpl := cf.Body[0].(*Attribute).Value.(*QuotedTemplateExpression)
	tfor, ok := tmpl.Parts[0].(*TemplateFor)
	if !ok {
		t.Fatalf("expected *TemplateFor, got %T", tmpl.Parts[0])
	}
	if tfor.Intro.Key.Value != "x" {
		t.Fatalf("unexpected for-directive iterator %q", tfor.Intro.Key.Value)
	}
}

func TestParseMultipleLabelsAndNestedBlocks(t *testing.T) {
	src := "provider \"aws\" {\n" +
		"  region = \"us-east-1\"\n" +
		"}\n" +
		"\n" +
		"# a comment\n" +
		"variable \"x\" {\n" +
		"  default = 1\n" +
		"}\n"
	cf := mustParse(t, src)
	if len(cf.Body) != 2 {
		t.Fatalf("expected 2 top-level body elements, got %d", len(cf.Body))
	}
}

func TestParseErrorReportsPosition(t *testing.T) {
	_, err := Parse("attr = \n")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Line == 0 {
		t.Fatalf("expected a non-zero line number")
	}
}

func TestParseErrorReportsExpectedTokens(t *testing.T) {
	_, err := Parse("attr = [1, 2\n")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if len(pe.Expected) == 0 {
		t.Fatalf("expected Expected to be populated, got %#v", pe)
	}
	if !strings.Contains(pe.Error(), "expected one of") {
		t.Fatalf("expected Error() to mention the expected tokens, got %q", pe.Error())
	}
}

func TestSafeParseWrapsResult(t *testing.T) {
	ok := SafeParse(`attr = 1` + "\n")
	if !ok.Success || ok.Data == nil {
		t.Fatalf("expected success, got %#v", ok)
	}

	bad := SafeParse("attr = \n")
	if bad.Success || bad.Error == nil {
		t.Fatalf("expected failure with an error, got %#v", bad)
	}
}

func TestParseNumberBoundary(t *testing.T) {
	cf := mustParse(t, "attr = 1.5e-3\n")
	num, ok := cf.Body[0].(*Attribute).Value.(*NumberLiteral)
	if !ok {
		t.Fatalf("expected *NumberLiteral, got %T", cf.Body[0].(*Attribute).Value)
	}
	if num.Value != 1.5e-3 {
		t.Fatalf("unexpected number value %v", num.Value)
	}
}

func TestParseUnaryAndLogicalOperators(t *testing.T) {
	// Mixed-precedence operators nest the conventional way: "!a && b || c"
	// parses as "(!a && b) || c", since "&&" binds tighter than "||".
	cf := mustParse(t, "attr = !a && b || c\n")
	top, ok := cf.Body[0].(*Attribute).Value.(*BinaryOperator)
	if !ok || top.Operator != "||" {
		t.Fatalf("expected top-level '||', got %#v", cf.Body[0].(*Attribute).Value)
	}
	and, ok := top.Left.(*BinaryOperator)
	if !ok || and.Operator != "&&" {
		t.Fatalf("expected left operand '&&', got %#v", top.Left)
	}
	if _, ok := and.Left.(*UnaryOperator); !ok {
		t.Fatalf("expected leftmost operand to be a *UnaryOperator, got %T", and.Left)
	}
}
