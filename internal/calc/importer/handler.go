package importer

import (
	"net/http"

	"Takeoff/internal/calc/estimate"
	"Takeoff/internal/logger"
	"Takeoff/internal/respond"
)

// maxUpload bounds the size of uploaded workbooks.
const maxUpload = 10 << 20

type Handler struct {
	Log *logger.Logger
}

type ImportResult struct {
	estimate.BatchResult
	RowErrors []RowError `json:"row_errors,omitempty"`
}

// Import takes a multipart upload in the "file" field and computes every
// part in it.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, respond.ErrorBody{Error: "file required", Field: "file"})
		return
	}
	defer file.Close()

	parts, rowErrs, err := ParseWorkbook(file)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	estimate.AssignIDs(parts)
	res := ImportResult{BatchResult: estimate.Batch(parts), RowErrors: rowErrs}
	h.Log.Info("import: %d parts, %d failed, %d rows skipped", res.Count, res.Failed, len(rowErrs))
	respond.JSON(w, http.StatusOK, res)
}
