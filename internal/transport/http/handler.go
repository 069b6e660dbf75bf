// Package http exposes the catalog over a JSON API. Handlers translate wire
// payloads to usecase/query inputs and domain errors to status codes; no
// catalog rule lives here.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"cloud.google.com/go/civil"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/queries"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/registry"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/usecases"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

// Handler routes the catalog API.
type Handler struct {
	registry        *registry.Registry
	ingestProduct   *usecases.IngestProduct
	attachVariant   *usecases.AttachVariant
	appendPrice     *usecases.AppendPrice
	addMedia        *usecases.AddMedia
	defineAttribute *usecases.DefineAttribute
	defineCategory  *usecases.DefineCategory
	updateAttribute *usecases.UpdateAttribute
	effectivePrice  *queries.EffectivePrice
	primaryMedia    *queries.PrimaryMedia
	checkProduct    *queries.CheckProduct
	variantChildren *queries.VariantChildren
	log             *logger.Logger
}

// HandlerDeps bundles the constructor arguments.
type HandlerDeps struct {
	Registry        *registry.Registry
	IngestProduct   *usecases.IngestProduct
	AttachVariant   *usecases.AttachVariant
	AppendPrice     *usecases.AppendPrice
	AddMedia        *usecases.AddMedia
	DefineAttribute *usecases.DefineAttribute
	DefineCategory  *usecases.DefineCategory
	UpdateAttribute *usecases.UpdateAttribute
	EffectivePrice  *queries.EffectivePrice
	PrimaryMedia    *queries.PrimaryMedia
	CheckProduct    *queries.CheckProduct
	VariantChildren *queries.VariantChildren
	Log             *logger.Logger
}

// NewHandler creates the API handler.
func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		registry:        deps.Registry,
		ingestProduct:   deps.IngestProduct,
		attachVariant:   deps.AttachVariant,
		appendPrice:     deps.AppendPrice,
		addMedia:        deps.AddMedia,
		defineAttribute: deps.DefineAttribute,
		defineCategory:  deps.DefineCategory,
		updateAttribute: deps.UpdateAttribute,
		effectivePrice:  deps.EffectivePrice,
		primaryMedia:    deps.PrimaryMedia,
		checkProduct:    deps.CheckProduct,
		variantChildren: deps.VariantChildren,
		log:             deps.Log,
	}
}

// Routes builds the API mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/products", h.handleIngestProduct)
	mux.HandleFunc("GET /api/v1/products/{part}/price", h.handleEffectivePrice)
	mux.HandleFunc("POST /api/v1/products/{part}/prices", h.handleAppendPrice)
	mux.HandleFunc("GET /api/v1/products/{part}/media/primary", h.handlePrimaryMedia)
	mux.HandleFunc("POST /api/v1/products/{part}/media", h.handleAddMedia)
	mux.HandleFunc("GET /api/v1/products/{part}/variants", h.handleVariantChildren)
	mux.HandleFunc("POST /api/v1/products/{part}/variants", h.handleAttachVariant)
	mux.HandleFunc("GET /api/v1/products/{part}/violations", h.handleCheckProduct)

	mux.HandleFunc("POST /api/v1/attributes", h.handleDefineAttribute)
	mux.HandleFunc("GET /api/v1/attributes/{code}", h.handleGetAttribute)
	mux.HandleFunc("PATCH /api/v1/attributes/{code}", h.handleUpdateAttribute)
	mux.HandleFunc("POST /api/v1/categories", h.handleDefineCategory)
	mux.HandleFunc("GET /api/v1/categories/{id}/requirements", h.handleRequirements)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

type ingestRequest struct {
	PartNumber       string            `json:"part_number"`
	BrandID          string            `json:"brand_id"`
	CategoryID       *string           `json:"category_id,omitempty"`
	DimensionID      *string           `json:"dimension_id,omitempty"`
	WarrantyID       *string           `json:"warranty_id,omitempty"`
	VendorID         *string           `json:"vendor_id,omitempty"`
	ShortDescription string            `json:"short_description,omitempty"`
	LongDescription  string            `json:"long_description,omitempty"`
	MarketingText    string            `json:"marketing_text,omitempty"`
	Values           map[string]string `json:"values,omitempty"`
	Price            *priceRequest     `json:"price,omitempty"`
	Media            []mediaRequest    `json:"media,omitempty"`
}

type priceRequest struct {
	EffectiveDate string  `json:"effective_date"`
	Currency      string  `json:"currency"`
	List          string  `json:"list"`
	Retail        *string `json:"retail,omitempty"`
	Discount      *string `json:"discount,omitempty"`
	Cost          *string `json:"cost,omitempty"`
}

type mediaRequest struct {
	Type     string `json:"type"`
	URL      string `json:"url"`
	Position *int64 `json:"position,omitempty"`
}

type violationPayload struct {
	Code          string `json:"code"`
	AttributeCode string `json:"attribute_code,omitempty"`
	Message       string `json:"message"`
}

func violationsPayload(violations []domain.Violation) []violationPayload {
	out := make([]violationPayload, 0, len(violations))
	for _, v := range violations {
		out = append(out, violationPayload{
			Code:          string(v.Code),
			AttributeCode: v.AttributeCode,
			Message:       v.Message,
		})
	}
	return out
}

func (h *Handler) handleIngestProduct(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if !h.decode(w, r, &req) {
		return
	}

	in := &usecases.IngestProductInput{
		PartNumber:       req.PartNumber,
		BrandID:          req.BrandID,
		CategoryID:       req.CategoryID,
		DimensionID:      req.DimensionID,
		WarrantyID:       req.WarrantyID,
		VendorID:         req.VendorID,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		MarketingText:    req.MarketingText,
		Values:           req.Values,
	}
	if req.Price != nil {
		price, err := toPriceInput(req.Price)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err)
			return
		}
		in.Price = price
	}
	for _, m := range req.Media {
		in.Media = append(in.Media, usecases.MediaInput{Type: m.Type, URL: m.URL, Position: m.Position})
	}

	result, err := h.ingestProduct.Execute(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	if !result.Committed {
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"part_number": result.PartNumber,
			"violations":  violationsPayload(result.Violations),
		})
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"part_number": result.PartNumber,
	})
}

func (h *Handler) handleEffectivePrice(w http.ResponseWriter, r *http.Request) {
	var asOf *civil.Date
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		d, err := civil.ParseDate(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, errors.New("as_of must be YYYY-MM-DD"))
			return
		}
		asOf = &d
	}

	price, err := h.effectivePrice.Execute(r.Context(), r.PathValue("part"), asOf)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	payload := map[string]interface{}{
		"part_number":    price.PartNumber,
		"effective_date": price.EffectiveDate.String(),
		"currency":       price.Currency,
		"list":           price.List.String(),
	}
	if price.Retail != nil {
		payload["retail"] = price.Retail.String()
	}
	if price.Discount != nil {
		payload["discount"] = price.Discount.String()
	}
	if price.Cost != nil {
		payload["cost"] = price.Cost.String()
	}
	h.writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) handleAppendPrice(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if !h.decode(w, r, &req) {
		return
	}
	in, err := toPriceInput(&req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.appendPrice.Execute(r.Context(), r.PathValue("part"), in); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) handlePrimaryMedia(w http.ResponseWriter, r *http.Request) {
	mediaType := r.URL.Query().Get("type")
	if mediaType == "" {
		mediaType = string(domain.MediaImage)
	}

	m, err := h.primaryMedia.Execute(r.Context(), r.PathValue("part"), mediaType)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	payload := map[string]interface{}{
		"media_id":    m.MediaID,
		"part_number": m.PartNumber,
		"type":        string(m.Type),
		"url":         m.URL,
	}
	if m.Position != nil {
		payload["position"] = *m.Position
	}
	h.writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) handleAddMedia(w http.ResponseWriter, r *http.Request) {
	var req mediaRequest
	if !h.decode(w, r, &req) {
		return
	}
	mediaID, err := h.addMedia.Execute(r.Context(), r.PathValue("part"),
		&usecases.MediaInput{Type: req.Type, URL: req.URL, Position: req.Position})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{"media_id": mediaID})
}

func (h *Handler) handleVariantChildren(w http.ResponseWriter, r *http.Request) {
	children, err := h.variantChildren.Execute(r.Context(), r.PathValue("part"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	payload := make([]map[string]interface{}, 0, len(children))
	for _, child := range children {
		payload = append(payload, map[string]interface{}{
			"part_number": child.PartNumber,
			"brand_id":    child.BrandID,
		})
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"children": payload})
}

func (h *Handler) handleAttachVariant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ParentPartNumber string `json:"parent_part_number"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.attachVariant.Execute(r.Context(), r.PathValue("part"), req.ParentPartNumber); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCheckProduct(w http.ResponseWriter, r *http.Request) {
	violations, err := h.checkProduct.Execute(r.Context(), r.PathValue("part"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"part_number": r.PathValue("part"),
		"violations":  violationsPayload(violations),
	})
}

func (h *Handler) handleDefineAttribute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code       string `json:"code"`
		Label      string `json:"label"`
		DataType   string `json:"data_type"`
		IsVariant  bool   `json:"is_variant"`
		IsRequired bool   `json:"is_required"`
		IsFacet    bool   `json:"is_facet"`
		Unit       string `json:"unit,omitempty"`
		Group      string `json:"group,omitempty"`
		SortOrder  int64  `json:"sort_order,omitempty"`
		Options    []struct {
			Value     string `json:"value"`
			Label     string `json:"label,omitempty"`
			SortOrder int64  `json:"sort_order,omitempty"`
		} `json:"options,omitempty"`
	}
	if !h.decode(w, r, &req) {
		return
	}

	in := &usecases.DefineAttributeInput{
		Code:       req.Code,
		Label:      req.Label,
		DataType:   req.DataType,
		IsVariant:  req.IsVariant,
		IsRequired: req.IsRequired,
		IsFacet:    req.IsFacet,
		Unit:       req.Unit,
		Group:      req.Group,
		SortOrder:  req.SortOrder,
	}
	for _, opt := range req.Options {
		in.Options = append(in.Options, usecases.OptionInput{
			Value: opt.Value, Label: opt.Label, SortOrder: opt.SortOrder,
		})
	}

	attributeID, err := h.defineAttribute.Execute(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{"attribute_id": attributeID})
}

func (h *Handler) handleGetAttribute(w http.ResponseWriter, r *http.Request) {
	attr, err := h.registry.GetAttribute(r.Context(), r.PathValue("code"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	payload := map[string]interface{}{
		"attribute_id": attr.AttributeID,
		"code":         attr.Code,
		"label":        attr.Label,
		"data_type":    string(attr.Type),
		"is_variant":   attr.IsVariant,
		"is_required":  attr.IsRequired,
		"is_facet":     attr.IsFacet,
		"unit":         attr.Unit,
		"group":        attr.Group,
		"sort_order":   attr.SortOrder,
	}
	if attr.Type == domain.TypeEnum {
		options, err := h.registry.ListOptions(r.Context(), attr.AttributeID)
		if err != nil {
			h.writeDomainError(w, err)
			return
		}
		opts := make([]map[string]interface{}, 0, len(options))
		for _, opt := range options {
			opts = append(opts, map[string]interface{}{
				"option_id": opt.OptionID,
				"value":     opt.Value,
				"label":     opt.Label,
			})
		}
		payload["options"] = opts
	}
	h.writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) handleUpdateAttribute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label      *string `json:"label,omitempty"`
		IsVariant  *bool   `json:"is_variant,omitempty"`
		IsRequired *bool   `json:"is_required,omitempty"`
		IsFacet    *bool   `json:"is_facet,omitempty"`
		Unit       *string `json:"unit,omitempty"`
		Group      *string `json:"group,omitempty"`
		SortOrder  *int64  `json:"sort_order,omitempty"`
	}
	if !h.decode(w, r, &req) {
		return
	}

	err := h.updateAttribute.Execute(r.Context(), &usecases.UpdateAttributeInput{
		Code:       r.PathValue("code"),
		Label:      req.Label,
		IsVariant:  req.IsVariant,
		IsRequired: req.IsRequired,
		IsFacet:    req.IsFacet,
		Unit:       req.Unit,
		Group:      req.Group,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDefineCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code               string  `json:"code,omitempty"`
		Name               string  `json:"name"`
		ParentID           *string `json:"parent_id,omitempty"`
		ClassificationCode string  `json:"classification_code,omitempty"`
		Requirements       []struct {
			AttributeID  string `json:"attribute_id"`
			IsRequired   bool   `json:"is_required"`
			DisplayOrder int64  `json:"display_order,omitempty"`
		} `json:"requirements,omitempty"`
	}
	if !h.decode(w, r, &req) {
		return
	}

	in := &usecases.DefineCategoryInput{
		Code:               req.Code,
		Name:               req.Name,
		ParentID:           req.ParentID,
		ClassificationCode: req.ClassificationCode,
	}
	for _, link := range req.Requirements {
		in.Requirements = append(in.Requirements, usecases.RequirementInput{
			AttributeID:  link.AttributeID,
			IsRequired:   link.IsRequired,
			DisplayOrder: link.DisplayOrder,
		})
	}

	categoryID, err := h.defineCategory.Execute(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{"category_id": categoryID})
}

func (h *Handler) handleRequirements(w http.ResponseWriter, r *http.Request) {
	requirements, err := h.registry.RequirementsFor(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	payload := make([]map[string]interface{}, 0, len(requirements))
	for _, req := range requirements {
		payload = append(payload, map[string]interface{}{
			"attribute_code":     req.Attribute.Code,
			"data_type":          string(req.Attribute.Type),
			"is_required":        req.IsRequired,
			"display_order":      req.DisplayOrder,
			"source_category_id": req.SourceCategoryID,
		})
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"requirements": payload})
}

func toPriceInput(req *priceRequest) (*usecases.PriceInput, error) {
	date, err := civil.ParseDate(req.EffectiveDate)
	if err != nil {
		return nil, errors.New("effective_date must be YYYY-MM-DD")
	}
	return &usecases.PriceInput{
		EffectiveDate: date,
		Currency:      req.Currency,
		List:          req.List,
		Retail:        req.Retail,
		Discount:      req.Discount,
		Cost:          req.Cost,
	}, nil
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("malformed JSON body"))
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeDomainError maps domain sentinels to HTTP status codes.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrAttributeNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrNoPrice),
		errors.Is(err, domain.ErrNoMedia):
		h.writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrSelfReference),
		errors.Is(err, domain.ErrAlreadyHasParent),
		errors.Is(err, domain.ErrCyclicVariant):
		h.writeError(w, http.StatusConflict, err)
	case errors.Is(err, domain.ErrEmptyPartNumber),
		errors.Is(err, domain.ErrMissingBrand),
		errors.Is(err, domain.ErrBadMediaType),
		errors.Is(err, domain.ErrBadDataType),
		errors.Is(err, domain.ErrEmptyAttribute),
		errors.Is(err, domain.ErrDuplicateOption),
		errors.Is(err, domain.ErrEmptyMediaURL),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrMoneyOverflow):
		h.writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrCyclicCategory):
		h.writeError(w, http.StatusInternalServerError, err)
	default:
		h.log.Error("request failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}
