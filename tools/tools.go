//go:build tools
// +build tools

package tools

import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "github.com/google/wire/cmd/wire"
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/rakyll/hey"
	_ "github.com/wadey/gocovmerge"
	_ "go.uber.org/mock/gomock"
	_ "go.uber.org/mock/mockgen"
	_ "mvdan.cc/gofumpt"
)
