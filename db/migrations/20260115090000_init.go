package migrations

import (
	"context"

	"github.com/scrollverse/metalbridge/db/models"
	"github.com/uptrace/bun"
)

/* Since this init will reflect the latest model fields when run on fresh db
make sure that when you add/remove columns in subsequent migrations IfNotExists/IfExists is used
otherwise it's going to result in errors.
*/
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if _, err := db.NewCreateTable().Model((*models.Registry)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.Asset)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.ProvenanceEntry)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.Authorization)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*models.ProvenanceEntry)(nil)).
			Index("provenance_entries_token_id_idx").
			Column("token_id").
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, nil)
}
