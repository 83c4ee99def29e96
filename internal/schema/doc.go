// Package schema loads the CloudFormation Resource Specification and
// resolves it into resource types, property types and property shapes
// ready for code generation.
//
// The input format is the published specification document:
//
//	{
//	  "ResourceTypes": {"AWS::Route53::RecordSet": {...}},
//	  "PropertyTypes": {"AWS::Route53::RecordSet.AliasTarget": {...}, "Tag": {...}}
//	}
//
// Two optional keys are accepted on resource types, property types and
// properties: "Description" (prose) and "Examples" (snippets). They are
// copied verbatim into generated doc comments.
//
// Property type references are resolved against the owning resource
// first ("AWS::Route53::RecordSet.AliasTarget") and then against the bare
// name, which is how shared types such as "Tag" are declared.
package schema
