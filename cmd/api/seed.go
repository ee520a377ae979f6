package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/gym-manager/internal/db"
	"github.com/BruksfildServices01/gym-manager/internal/domain"
	"github.com/BruksfildServices01/gym-manager/internal/dto"
	"github.com/BruksfildServices01/gym-manager/internal/infra/repository"
	"github.com/BruksfildServices01/gym-manager/internal/models"
	"github.com/BruksfildServices01/gym-manager/internal/services"
)

type seedOptions struct {
	gimnasio string
	username string
	password string
}

// ======================================================
// SEED
// ======================================================

func seedCmd() *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Crea un gimnasio y su administrador",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.password == "" {
				return errors.New("--password is required")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			return seed(cmd.Context(), db, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.gimnasio, "gimnasio", "Gimnasio principal", "Nombre del gimnasio")
	cmd.Flags().StringVar(&opts.username, "admin", "admin", "Nombre de usuario del administrador")
	cmd.Flags().StringVar(&opts.password, "password", "", "Contraseña del administrador")

	return cmd
}

// seed no hace nada si el administrador ya existe.
func seed(ctx context.Context, db *gorm.DB, cfg *config.Config, opts seedOptions) error {
	usuarios := services.NewUsuarioService(repository.NewUsuarioGormRepository(db), cfg.BcryptCost)

	if u, err := usuarios.FindByUsername(ctx, opts.username); err == nil {
		log.Info().Uint("id_usuario", u.ID).Msg("admin already exists, nothing to seed")
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g := &models.Gimnasio{Nombre: opts.gimnasio}
		if err := repository.NewGimnasioGormRepository(tx).Create(ctx, g); err != nil {
			return fmt.Errorf("create gimnasio: %w", err)
		}

		admin, err := usuarios.
			WithRepository(repository.NewUsuarioGormRepository(tx)).
			Create(ctx, dto.CrearUsuarioDTO{
				Username:   opts.username,
				Password:   opts.password,
				Rol:        models.RolAdmin,
				IDGimnasio: &g.ID,
			})
		if err != nil {
			return err
		}

		log.Info().
			Uint("id_gimnasio", g.ID).
			Uint("id_usuario", admin.ID).
			Str("username", admin.Username).
			Msg("seed completed")
		return nil
	})
}
