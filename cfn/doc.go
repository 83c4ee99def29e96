// Package cfn is the runtime shared by generated CloudFormation bindings.
//
// Every property of a generated type is a Value[T]: either a literal T or
// a deferred token (Ref, Fn::GetAtt, Fn::ImportValue, Fn::Sub) resolved by
// CloudFormation at deploy time. Generated types keep their properties in
// a Values mapping keyed by wire name, so rendering never depends on Go
// identifiers.
//
// A Stack collects resources under logical ids and synthesizes the
// template document:
//
//	stack := cfn.NewStack("dns")
//	_, err := route53.NewRecordSet(stack, "WWW", route53.RecordSetPropsArgs{
//		Name: cfn.String("www.example.com."),
//		Type: cfn.String("A"),
//	})
//	doc, err := stack.TemplateJSON()
package cfn
