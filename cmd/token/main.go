// token da de alta (o actualiza) un usuario por open_id e imprime un JWT firmado.
// Herramienta de desarrollo: en producción la identidad la emite el proveedor externo.
//
// Uso: go run ./cmd/token --open-id <id> [--name <nombre>] [--email <email>] [--role admin|user|dispatcher|viewer]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhoicas/despachosys-api/internal/application/auth"
	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/infrastructure/postgres"
	"github.com/jhoicas/despachosys-api/pkg/config"
)

func main() {
	in := dto.IssueTokenRequest{LoginMethod: "cli"}
	for i := 1; i < len(os.Args); i++ {
		if i+1 >= len(os.Args) {
			break
		}
		switch os.Args[i] {
		case "--open-id":
			in.OpenID = os.Args[i+1]
		case "--name":
			in.Name = os.Args[i+1]
		case "--email":
			in.Email = os.Args[i+1]
		case "--role":
			in.Role = os.Args[i+1]
		default:
			continue
		}
		i++
	}
	if in.OpenID == "" {
		fmt.Fprintln(os.Stderr, "Uso: token --open-id <id> [--name <nombre>] [--email <email>] [--role <rol>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	out, err := uc.IssueToken(ctx, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Emitir token: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
