package main

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/database/postgres"
)

func TestExecute_ClosesConnection(t *testing.T) {
	tests := []struct {
		name   string
		runErr error
	}{
		{name: "comando com sucesso"},
		{name: "comando com erro", runErr: errors.New("planilha não encontrada")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			mock.ExpectClose()

			a := &app{conn: &postgres.Connection{DB: db}}
			root := &cobra.Command{
				Use:           "importer",
				SilenceUsage:  true,
				SilenceErrors: true,
				RunE: func(cmd *cobra.Command, args []string) error {
					return tt.runErr
				},
			}
			root.SetArgs([]string{})

			err = execute(root, a)

			if tt.runErr != nil {
				assert.ErrorIs(t, err, tt.runErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Nil(t, a.conn)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd(&app{})

	for _, name := range []string{"import", "watch", "setup"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	setup, _, err := root.Find([]string{"setup"})
	require.NoError(t, err)
	assert.NotNil(t, setup.Flags().Lookup("seed"))
}
