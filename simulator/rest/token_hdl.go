package rest

import (
	"net/http"
)

// TokenResponse represents the response structure for JWT token generation
type TokenResponse struct {
	Token     string `json:"token,omitempty"`
	ExpiredAt int64  `json:"expired_at,omitempty"`
}

// TokenRequest represents the request structure for JWT token generation
type TokenRequest struct {
	PublicKey string `json:"public_key"` // PEM encoded public key
	ClientID  string `json:"client_id"`
}

// GenToken godoc
// @Summary Issue an API token
// @Description Verify the client's public key and return a signed JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Client id and public key"
// @Success 200 {object} SuccessResponse[TokenResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/auth/token [post]
func (h *Handler) GenToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req TokenRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	if req.ClientID == "" {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "client_id is required", nil)
		return
	}
	token, expiredAt, err := h.Svc.VerifyAndGenerateToken(ctx, req.ClientID, req.PublicKey)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := TokenResponse{
		ExpiredAt: expiredAt,
		Token:     token,
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}
