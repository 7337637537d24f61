// importar carga activos en lote desde un archivo CSV (separado por ';') o XLSX.
//
// Uso: go run ./cmd/importar ruta/activos.csv
// Requiere la misma configuración de base de datos que cmd/api.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/activos-api/internal/application/importacion"
	"github.com/jhoicas/activos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/activos-api/pkg/config"
	"github.com/jhoicas/activos-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: importar <archivo.csv|archivo.xlsx>")
		os.Exit(1)
	}
	ruta := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	f, err := os.Open(ruta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir archivo: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var filas []importacion.Fila
	switch strings.ToLower(filepath.Ext(ruta)) {
	case ".csv":
		filas, err = importacion.LeerCSV(f)
	case ".xlsx":
		filas, err = importacion.LeerXLSX(f)
	default:
		fmt.Fprintln(os.Stderr, "Formato no soportado, use .csv o .xlsx")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer archivo: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	uc := importacion.NewUseCase(postgres.NewActivoRepository(pool))
	reporte, err := uc.Importar(filas)
	if err != nil {
		log.Fatal().Err(err).Msg("importar activos")
	}

	log.Info().
		Int("importados", reporte.Importados).
		Int("omitidos", reporte.Omitidos).
		Msg("importación terminada")
	for _, e := range reporte.Errores {
		log.Warn().
			Int("linea", e.Linea).
			Str("codigo_activo", e.Codigo).
			Msg(e.Mensaje)
	}
}
