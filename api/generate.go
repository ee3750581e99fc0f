package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --package=api --generate=types,echo-server -o api.gen.go openapi.yml
