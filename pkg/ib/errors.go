// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package ib

import "fmt"

var (
	ErrUnsupportedSpeed  = fmt.Errorf("unsupported link speed")
	ErrMalformedTopology = fmt.Errorf("malformed topology")
	ErrDanglingLink      = fmt.Errorf("dangling link")
)
