package database

import (
	"context"
)

const listFeatureOverrides = `
SELECT actor_id, enabled
FROM organization_features
WHERE organization_id = $1
  AND feature = $2
  AND actor_id IN (0, $3)
ORDER BY actor_id DESC
`

type ListFeatureOverridesParams struct {
	OrganizationID int64
	Feature        string
	ActorID        int64
}

type ListFeatureOverridesRow struct {
	ActorID int64
	Enabled bool
}

func (q *Queries) ListFeatureOverrides(ctx context.Context, arg ListFeatureOverridesParams) ([]ListFeatureOverridesRow, error) {
	rows, err := q.db.QueryContext(ctx, listFeatureOverrides, arg.OrganizationID, arg.Feature, arg.ActorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListFeatureOverridesRow
	for rows.Next() {
		var i ListFeatureOverridesRow
		if err := rows.Scan(&i.ActorID, &i.Enabled); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
