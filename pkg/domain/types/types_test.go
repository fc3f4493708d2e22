package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/epiview/epiview/pkg/domain/types"
)

func TestStatCategory(t *testing.T) {
	for _, c := range []types.StatCategory{
		types.StatNeutral, types.StatDanger, types.StatWarning, types.StatInfo,
	} {
		gt.True(t, c.IsValid())
	}

	gt.False(t, types.StatCategory("critical").IsValid())
	gt.False(t, types.StatCategory("").IsValid())
}

func TestNewDatasetID(t *testing.T) {
	a := types.NewDatasetID()
	b := types.NewDatasetID()

	gt.NotEqual(t, a, b)
	gt.True(t, a.String() != "")
}
