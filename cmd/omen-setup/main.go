// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/nawocci/omen-fan/cmd/omen-setup/commands"
	"github.com/nawocci/omen-fan/internal/doctor"
)

func main() {
	traceId := uuid.NewString()
	ctx := context.WithValue(context.Background(), "traceId", traceId)
	err := commands.Execute(ctx)
	if err != nil {
		doctor.CheckErr(ctx, err)
	}
}
