package soc

import (
	"context"

	"github.com/sells-group/compscope/internal/model"
	"github.com/sells-group/compscope/pkg/onet"
)

// onetExternal adapts the O*NET client to the External tier interface.
type onetExternal struct {
	client onet.Client
}

// NewONETExternal wraps an O*NET client for use with WithExternal.
func NewONETExternal(client onet.Client) External {
	return &onetExternal{client: client}
}

func (o *onetExternal) Search(ctx context.Context, title string) ([]model.OccupationMatch, error) {
	occs, err := o.client.Search(ctx, title)
	if err != nil {
		return nil, err
	}

	matches := make([]model.OccupationMatch, 0, len(occs))
	for _, occ := range occs {
		matches = append(matches, model.OccupationMatch{
			Code:       Clean(occ.Code),
			Title:      occ.Title,
			Confidence: occ.RelevanceScore / 100,
			Method:     model.MethodExternal,
		})
	}
	return matches, nil
}
