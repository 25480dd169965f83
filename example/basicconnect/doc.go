// Package basicconnect holds accessors generated from basic-connect.yaml.
// It shows what msggen emits for every field kind and is compiled and tested
// with the rest of the module, so a change to the generator that breaks the
// emitted code is caught here.
//
//go:generate go run github.com/wippyai/msggen/cmd/msggen -schema basic-connect.yaml -package basicconnect -o basicconnect_gen.go
package basicconnect
