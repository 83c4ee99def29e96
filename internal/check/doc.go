// Package check validates the Properties of resources in CloudFormation
// templates against JSON Schemas derived from the resource specification.
//
// Every property value may be replaced by an intrinsic function object
// ({"Ref": ...} or {"Fn::...": ...}), mirroring the deferred values of the
// generated bindings. Templates are read as JSON or YAML; YAML short-form
// intrinsics such as !Ref and !GetAtt are expanded before validation.
package check
