// Command msggen generates Go accessors for binary messages described by a
// schema document.
//
// Usage:
//
//	msggen -schema basic-connect.yaml -package basicconnect -o basicconnect_gen.go
//	msggen -config msggen.toml -check
//	msggen -schema basic-connect.yaml -layout
//	msggen -schema basic-connect.yaml -message values -decode 07000000...
//	msggen -schema basic-connect.yaml -i
//
// Settings come from msggen.toml when present; flags override them.
package main
