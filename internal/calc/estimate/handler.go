package estimate

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
	"Takeoff/internal/logger"
	"Takeoff/internal/respond"
)

// maxBody bounds request bodies of the material endpoints.
const maxBody = 1 << 20

type Handler struct {
	Log *logger.Logger
}

// VariantInfo is one row of the variant listing.
type VariantInfo struct {
	Tag  part.Variant `json:"tag"`
	Name string       `json:"name"`
}

type MaterialsResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name,omitempty"`
	Variant part.Variant    `json:"variant"`
	Report  *takeoff.Report `json:"report"`
}

type BatchRequest struct {
	Parts []json.RawMessage `json:"parts"`
}

// AssignIDs gives every part without an id a fresh one.
func AssignIDs(parts []part.Part) {
	for i := range parts {
		if parts[i].ID == "" {
			parts[i].ID = uuid.NewString()
		}
	}
}

func (h *Handler) Variants(w http.ResponseWriter, r *http.Request) {
	vs := part.Variants()
	out := make([]VariantInfo, 0, len(vs))
	for _, v := range vs {
		out = append(out, VariantInfo{Tag: v, Name: v.DisplayName()})
	}
	respond.JSON(w, http.StatusOK, out)
}

func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	p, err := DecodePart(body)
	if err != nil {
		respond.Error(w, errorStatus(err), err)
		return
	}
	parts := []part.Part{p}
	AssignIDs(parts)
	p = parts[0]

	rep, err := ComputeMaterials(p)
	if err != nil {
		h.Log.Debug("materials %s: %v", p.Variant, err)
		respond.Error(w, errorStatus(err), err)
		return
	}
	h.Log.Info("materials %s %s: %d quantities", p.Variant, p.ID, rep.Len())
	respond.JSON(w, http.StatusOK, MaterialsResponse{ID: p.ID, Name: p.Name, Variant: p.Variant, Report: rep})
}

func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		respond.Error(w, errorStatus(err), err)
		return
	}
	if len(req.Parts) == 0 {
		respond.JSON(w, http.StatusBadRequest, respond.ErrorBody{Error: "no parts", Field: "parts"})
		return
	}
	res := BatchJSON(req.Parts)
	h.Log.Info("batch: %d parts, %d failed", res.Count, res.Failed)
	respond.JSON(w, http.StatusOK, res)
}

// errorStatus maps an unsupported variant to 422 and input errors to 400.
func errorStatus(err error) int {
	if errors.Is(err, ErrUnsupportedVariant) {
		return http.StatusUnprocessableEntity
	}
	return respond.Status(err, http.StatusBadRequest)
}
