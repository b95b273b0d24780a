package server

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"droscher.com/MyWhiskies/pkg/auth"
	"droscher.com/MyWhiskies/pkg/listing"
	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/policy"
)

var exportColumns = []string{
	"Bottle Name", "Bottle Type", "Distilleries", "Year Barrelled", "Year Bottled", "ABV", "Size",
	"Description", "Review", "Stars", "Cost", "Date Purchased", "Date Opened", "Date Killed",
}

type bottleSource interface {
	GetBottlesForUser(ctx context.Context, userID uint) ([]*model.Bottle, error)
}

// ExportServer streams a user's collection as CSV.
type ExportServer struct {
	*Web
	bottles bottleSource
}

func NewExportServer(web *Web, bottles bottleSource) *ExportServer {
	return &ExportServer{Web: web, bottles: bottles}
}

// ExportData only answers the owner; anyone else gets a 404.
func (e *ExportServer) ExportData(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		e.fail(w, r, err)

		return
	}

	viewer := auth.Viewer(r.Context())
	if !policy.IsOwnList(viewer, &model.User{ID: id}) {
		e.fail(w, r, policy.ErrNotFound)

		return
	}

	bottles, err := e.bottles.GetBottlesForUser(r.Context(), viewer.ID)
	if err != nil {
		e.fail(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", viewer.Username+"_bottles.csv"))
	w.WriteHeader(http.StatusOK)

	if err := WriteCSV(w, bottles); err != nil {
		e.logger.Error("error writing export", zap.Uint("user_id", viewer.ID), zap.Error(err))
	}
}

// WriteCSV writes the header and one row per bottle, ordered by name.
func WriteCSV(w io.Writer, bottles []*model.Bottle) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportColumns); err != nil {
		return err
	}

	for _, bottle := range listing.SortByName(bottles) {
		if err := writer.Write(exportRow(bottle)); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

func exportRow(bottle *model.Bottle) []string {
	return []string{
		bottle.Name,
		bottle.Type.DisplayName(),
		strings.Join(bottle.DistilleryNames(), ", "),
		formatInt(bottle.YearBarrelled),
		formatInt(bottle.YearBottled),
		formatFloat(bottle.ABV),
		formatInt(bottle.Size),
		bottle.Description,
		bottle.Review,
		formatFloat(bottle.Stars),
		formatFloat(bottle.Cost),
		formatDate(bottle.DatePurchased),
		formatDate(bottle.DateOpened),
		formatDate(bottle.DateKilled),
	}
}
