// Package config provides the bindings file: which services and resource
// types to generate, where to write them, and accessor name overrides.
//
// Example:
//
//	version: "1"
//	runtime: cfn-binding-generator/cfn
//	builtin: true
//	specs: [extra-spec.json]
//	services:
//	  - service: Route53
//	    package: route53
//	    output: services/route53
//	    resources: [HostedZone, RecordSet]
//	    names:
//	      AWS::Route53::HostedZone:
//	        VPCs: VPCs
//
// An empty resources list selects every resource type of the service.
package config
