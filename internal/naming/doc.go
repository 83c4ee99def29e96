// Package naming converts CloudFormation wire names into Go identifiers
// and keeps the bidirectional accessor/wire mapping for each generated
// type.
//
// Wire names are the PascalCase keys CloudFormation expects
// ("HostedZoneId"). Accessor names are the exported Go identifiers used
// for getters, setters and Args fields ("HostedZoneID"). The mapping is
// derived once from the schema, optionally overridden by the bindings
// file, and never inferred at render time: rendering always goes through
// the stored wire name.
package naming
