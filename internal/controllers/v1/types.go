package v1

import (
	"github.com/allotment/backend/internal/uuid"
)

type URIID struct {
	ID uuid.UUID `uri:"id" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month string `uri:"month" example:"2025-03"` // Year and month in YYYY-MM format
}
