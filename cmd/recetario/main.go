// Command recetario runs the recipe service.
package main

import (
	"context"
	"fmt"
	"os"

	"recetario/internal/app/bootstrap"

	"github.com/dalemusser/waffle/app"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		fmt.Fprintln(os.Stderr, "recetario:", err)
		os.Exit(1)
	}
}
