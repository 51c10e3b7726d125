package hclsyntax

import (
	"fmt"
	"math"
)

// Issue is one structural problem found by Validate. It never halts the
// walk — Validate always visits the whole tree and reports every issue it
// finds, per spec.md §4.2/§7: validation is a shape check, not a second
// parser, and it must never panic on attacker-controlled input.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Validate walks a ConfigFile checking the structural invariants that Go's
// type system does not already enforce: non-nil, non-empty identifier
// fields, finite numbers, non-empty heredoc markers, and known operator and
// kind strings. (That a OneLineBlock carries at most one attribute is already
// enforced by its single Attribute field, so it is not checked here.)
func Validate(cf *ConfigFile) (bool, []Issue) {
	v := &validator{}
	if cf == nil {
		return false, []Issue{{Path: "$", Message: "ConfigFile is nil"}}
	}
	v.validateBody("$", cf.Body)
	return len(v.issues) == 0, v.issues
}

type validator struct {
	issues []Issue
}

func (v *validator) add(path, format string, args ...any) {
	v.issues = append(v.issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) validateBody(path string, body []BodyElement) {
	for i, el := range body {
		p := fmt.Sprintf("%s.body[%d]", path, i)
		switch e := el.(type) {
		case *Attribute:
			v.validateIdentifier(p+".name", e.Name)
			v.validateExpression(p+".value", e.Value)
		case *Block:
			v.validateIdentifier(p+".blockType", e.BlockType)
			for j, l := range e.Labels {
				v.validateLabel(fmt.Sprintf("%s.labels[%d]", p, j), l)
			}
			v.validateBody(p, e.Bodies)
		case *OneLineBlock:
			v.validateIdentifier(p+".blockType", e.BlockType)
			for j, l := range e.Labels {
				v.validateLabel(fmt.Sprintf("%s.labels[%d]", p, j), l)
			}
			if e.Attribute != nil {
				v.validateIdentifier(p+".attribute.name", e.Attribute.Name)
				v.validateExpression(p+".attribute.value", e.Attribute.Value)
			}
		case nil:
			v.add(p, "body element is nil")
		default:
			v.add(p, "unrecognized body element type %T", e)
		}
	}
}

func (v *validator) validateLabel(path string, l Label) {
	switch lbl := l.(type) {
	case *Identifier:
		v.validateIdentifier(path, lbl)
	case *StringLiteral:
		// any decoded string is a valid label value, including empty
	case nil:
		v.add(path, "label is nil")
	default:
		v.add(path, "unrecognized label type %T", lbl)
	}
}

func (v *validator) validateIdentifier(path string, id *Identifier) {
	if id == nil {
		v.add(path, "identifier is nil")
		return
	}
	if id.Value == "" {
		v.add(path, "identifier has an empty value")
	}
}

func (v *validator) validateExpression(path string, expr Expression) {
	switch e := expr.(type) {
	case nil:
		v.add(path, "expression is nil")
	case *StringLiteral:
	case *NumberLiteral:
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			v.add(path, "number literal is not finite")
		}
	case *BooleanLiteral:
	case *NullLiteral:
	case *TupleValue:
		for i, el := range e.Elements {
			v.validateExpression(fmt.Sprintf("%s.elements[%d]", path, i), el)
		}
	case *ObjectValue:
		for i, el := range e.Elements {
			v.validateIdentifier(fmt.Sprintf("%s.elements[%d].key", path, i), el.Key)
			v.validateExpression(fmt.Sprintf("%s.elements[%d].value", path, i), el.Value)
		}
	case *QuotedTemplateExpression:
		v.validateTemplateParts(path+".parts", e.Parts)
	case *HeredocTemplateExpression:
		v.validateIdentifier(path+".marker", e.Marker)
		if e.Marker != nil && e.Marker.Value == "" {
			v.add(path+".marker", "heredoc marker must not be empty")
		}
		v.validateTemplateParts(path+".template", e.Template)
	case *FunctionCallExpression:
		v.validateIdentifier(path+".name", e.Name)
		for i, a := range e.Args {
			v.validateExpression(fmt.Sprintf("%s.args[%d]", path, i), a)
		}
	case *VariableExpression:
		v.validateIdentifier(path+".name", e.Name)
	case *ForExpression:
		v.validateForIntro(path+".intro", e.Intro)
		switch e.Kind {
		case ForKindTuple:
			v.validateExpression(path+".expression", e.Expression)
		case ForKindObject:
			v.validateExpression(path+".key", e.Key)
			v.validateExpression(path+".value", e.Value)
		default:
			v.add(path+".kind", "for-expression kind must be %q or %q, got %q", ForKindTuple, ForKindObject, e.Kind)
		}
		if e.Condition != nil {
			v.validateExpression(path+".condition", e.Condition)
		}
	case *IndexOperator:
		v.validateExpression(path+".key", e.Key)
		if e.Target != nil {
			v.validateExpression(path+".target", e.Target)
		}
	case *LegacyIndexOperator:
		v.validateExpression(path+".key", e.Key)
		v.validateExpression(path+".target", e.Target)
	case *GetAttributeOperator:
		v.validateIdentifier(path+".key", e.Key)
		if e.Target != nil {
			v.validateExpression(path+".target", e.Target)
		}
	case *SplatOperator:
		v.validateExpression(path+".target", e.Target)
		switch e.Kind {
		case SplatKindAttribute:
			for i, a := range e.Attributes {
				v.validateIdentifier(fmt.Sprintf("%s.attributes[%d].key", path, i), a.Key)
			}
		case SplatKindFull:
			for i, op := range e.Operations {
				v.validateExpression(fmt.Sprintf("%s.operations[%d]", path, i), op)
			}
		default:
			v.add(path+".kind", "splat operator kind must be %q or %q, got %q", SplatKindAttribute, SplatKindFull, e.Kind)
		}
	case *UnaryOperator:
		if e.Operator != "!" && e.Operator != "-" {
			v.add(path+".operator", "unrecognized unary operator %q", e.Operator)
		}
		v.validateExpression(path+".term", e.Term)
	case *BinaryOperator:
		if !isBinaryOperator(e.Operator) {
			v.add(path+".operator", "unrecognized binary operator %q", e.Operator)
		}
		v.validateExpression(path+".left", e.Left)
		v.validateExpression(path+".right", e.Right)
	case *ConditionalOperator:
		v.validateExpression(path+".predicate", e.Predicate)
		v.validateExpression(path+".trueExpr", e.TrueExpr)
		v.validateExpression(path+".falseExpr", e.FalseExpr)
	case *ParenthesizedExpression:
		v.validateExpression(path+".expression", e.Expression)
	default:
		v.add(path, "unrecognized expression type %T", e)
	}
}

func (v *validator) validateForIntro(path string, intro ForIntro) {
	v.validateIdentifier(path+".iterator", intro.Iterator)
	if intro.Value != nil {
		v.validateIdentifier(path+".value", intro.Value)
	}
	v.validateExpression(path+".collection", intro.Collection)
}

func (v *validator) validateTemplateParts(path string, parts []TemplatePart) {
	for i, part := range parts {
		p := fmt.Sprintf("%s[%d]", path, i)
		switch tp := part.(type) {
		case *TemplateLiteral:
		case *TemplateInterpolation:
			v.validateExpression(p+".expression", tp.Expression)
		case *TemplateIf:
			v.validateExpression(p+".condition", tp.Condition)
			v.validateTemplateParts(p+".then", tp.Then)
			if tp.Else != nil {
				v.validateTemplateParts(p+".else", tp.Else)
			}
		case *TemplateFor:
			v.validateIdentifier(p+".intro.key", tp.Intro.Key)
			if tp.Intro.Value != nil {
				v.validateIdentifier(p+".intro.value", tp.Intro.Value)
			}
			v.validateExpression(p+".intro.collection", tp.Intro.Collection)
			v.validateTemplateParts(p+".body", tp.Body)
		case nil:
			v.add(p, "template part is nil")
		default:
			v.add(p, "unrecognized template part type %T", tp)
		}
	}
}

func isBinaryOperator(op string) bool {
	switch op {
	case "||", "&&", "==", "!=", ">", ">=", "<", "<=", "+", "-", "*", "/", "%":
		return true
	}
	return false
}
