// Package api is the client for the exhibition backend. The backend owns
// accounts, companies, exhibitions, shipment directions, lead storage and
// business card OCR; the bot authenticates every call with its own token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/izzat1998/exhibition-bot/internal/lead"
)

const (
	pathLogin      = "/api/accounts/telegram-login/"
	pathRegister   = "/api/accounts/telegram-registration/"
	pathCompanies  = "/api/companies/list_via_telegram/"
	pathDirections = "/api/leads/shipment-directions/list_via_telegram/"
	pathCategories = "/api/leads/categories/list_via_telegram/?is_active=true"
	pathCreateLead = "/api/leads/lead-create-via-telegram/"
	pathCardOCR    = "/api/leads/business-card-ocr-via-telegram/"

	photoField    = "business_card_photo"
	photoFilename = "business_card.jpg"
)

// Login reports whether the Telegram user is registered with the backend.
func (c *Client) Login(ctx context.Context, telegramID int64) (bool, error) {
	status, _, err := c.postJSON(ctx, pathLogin, map[string]any{
		"telegram_id": telegramID,
	})
	if err != nil {
		return false, err
	}
	return status == http.StatusOK, nil
}

// Register enrolls the Telegram user under the chosen company.
func (c *Client) Register(ctx context.Context, telegramID, companyID int64, firstName, lastName string) (bool, error) {
	status, _, err := c.postJSON(ctx, pathRegister, map[string]any{
		"telegram_id": telegramID,
		"company_id":  companyID,
		"first_name":  firstName,
		"last_name":   lastName,
	})
	if err != nil {
		return false, err
	}
	return status == http.StatusOK || status == http.StatusCreated, nil
}

// Companies lists the companies available for registration.
func (c *Client) Companies(ctx context.Context) ([]Company, error) {
	var out []Company
	if _, err := c.getJSON(ctx, pathCompanies, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Exhibitions lists the active exhibitions.
func (c *Client) Exhibitions(ctx context.Context) ([]Exhibition, error) {
	var out []Exhibition
	if _, err := c.getJSON(ctx, pathCategories, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ShipmentDirections fetches the direction menu. The backend serves either a
// bare array or a paginated envelope; both decode to the same slice.
func (c *Client) ShipmentDirections(ctx context.Context) ([]lead.Direction, error) {
	var list directionList
	if _, err := c.getJSON(ctx, pathDirections, &list); err != nil {
		return nil, err
	}
	out := make([]lead.Direction, 0, len(list))
	for _, d := range list {
		if d.ID.String() == "" || d.Name == "" {
			continue
		}
		out = append(out, lead.Direction{ID: d.ID.String(), Name: d.Name})
	}
	return out, nil
}

// BusinessCardOCR uploads a card photo and returns whatever fields the
// backend recognized. A non-200 status or an empty extraction is reported as
// an error so callers fall back to manual entry.
func (c *Client) BusinessCardOCR(ctx context.Context, photo []byte) (lead.ExtractedData, error) {
	body, contentType, err := encodeMultipart(nil, photo)
	if err != nil {
		return nil, err
	}
	status, data, err := c.do(ctx, http.MethodPost, pathCardOCR, contentType, body)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("api: ocr: status %d", status)
	}

	var resp struct {
		Extracted lead.ExtractedData `json:"extracted_data"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("api: ocr: decode: %w", err)
	}
	if !resp.Extracted.HasData() {
		return nil, fmt.Errorf("api: ocr: no fields recognized")
	}
	return resp.Extracted, nil
}

// CreateLead submits the completed form. With a photo it sends multipart form
// data, otherwise plain JSON. A transport failure is an error; any backend
// verdict, accepted or rejected, comes back as a SubmitResult.
func (c *Client) CreateLead(ctx context.Context, payload LeadPayload, photo []byte) (SubmitResult, error) {
	var (
		status int
		data   []byte
		err    error
	)
	if len(photo) > 0 {
		var body []byte
		var contentType string
		body, contentType, err = encodeMultipart(payload.fields(), photo)
		if err != nil {
			return SubmitResult{}, err
		}
		status, data, err = c.do(ctx, http.MethodPost, pathCreateLead, contentType, body)
	} else {
		status, data, err = c.postJSON(ctx, pathCreateLead, payload)
	}
	if err != nil {
		return SubmitResult{}, err
	}

	result := SubmitResult{Status: status}
	if !result.OK() {
		result.Detail = errorDetail(data)
	}
	return result, nil
}

// encodeMultipart builds a multipart body from flat form fields plus the
// business card photo part.
func encodeMultipart(fields [][2]string, photo []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("api: multipart field %s: %w", f[0], err)
		}
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(
		`form-data; name=%q; filename=%q`, photoField, photoFilename))
	header.Set("Content-Type", "image/jpeg")
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("api: multipart photo: %w", err)
	}
	if _, err := part.Write(photo); err != nil {
		return nil, "", fmt.Errorf("api: multipart photo: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("api: multipart: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
