package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/pms-dashboard-api/internal/config"
	"github.com/vfg2006/pms-dashboard-api/internal/scheduler"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/importing"
	"github.com/vfg2006/pms-dashboard-api/pkg/log"
	"github.com/vfg2006/pms-dashboard-api/pkg/utils"
)

// app é montado no PersistentPreRunE e compartilhado pelos subcomandos
type app struct {
	cfg  *config.Config
	conn *postgres.Connection
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "importer",
		Short:         "Carga da planilha PMS Dashboard no PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.AddCommand(
		newImportCmd(a),
		newWatchCmd(a),
		newSetupCmd(a),
	)

	return root
}

// execute roda o comando e fecha o pool também quando ele termina com erro
func execute(root *cobra.Command, a *app) error {
	defer a.close()
	return root.Execute()
}

func (a *app) close() {
	if a.conn == nil {
		return
	}

	if err := a.conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
	}
	a.conn = nil
}

func (a *app) setup() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log.Setup(cfg.App.Env, cfg.App.LogLevel, nil)

	conn, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.conn = conn
	return nil
}

func newImportCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Substitui o conteúdo das quatro tabelas pelas linhas da planilha",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = a.cfg.Import.File
			}

			service := importing.NewService(repository.NewImportRepository(a.conn))

			result, err := service.Import(cmd.Context(), file)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "caminho da planilha (padrão: IMPORT_FILE)")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var (
		file         string
		cronSchedule string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reimporta a planilha periodicamente até receber um sinal de parada",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				a.cfg.Import.File = file
			}
			if cronSchedule != "" {
				a.cfg.ImportSync.CronSchedule = cronSchedule
			}
			a.cfg.ImportSync.Enabled = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			syncService := scheduler.NewImportSyncService(
				importing.NewService(repository.NewImportRepository(a.conn)),
				a.cfg,
			)
			if err := syncService.Start(ctx); err != nil {
				return err
			}

			<-ctx.Done()
			logrus.Info("Sinal de parada recebido, encerrando")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "caminho da planilha (padrão: IMPORT_FILE)")
	cmd.Flags().StringVar(&cronSchedule, "cron", "", "expressão cron (padrão: IMPORT_SYNC_CRON)")
	return cmd
}

func newSetupCmd(a *app) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Cria as tabelas e, opcionalmente, grava dados de exemplo",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := migration.Apply(ctx, a.conn); err != nil {
				return err
			}

			if !seed {
				return nil
			}

			_, err := migration.Seed(ctx, repository.NewImportRepository(a.conn))
			return err
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "grava dados de exemplo quando o banco está vazio")
	return cmd
}
