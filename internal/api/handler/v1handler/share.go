package v1handler

import (
	"bytes"
	"io"
	"net/http"
	"sharecart/internal/sharing"
	"sharecart/pkg/domain"
	"sharecart/pkg/serrors"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

func (h *Handler) shareCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := strconv.ParseInt(r.PathValue("cartID"), 10, 64)
	if err != nil || cartID <= 0 {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid cart id"))

		return
	}

	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	req, err := DecodeShareRequest(body)
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	shared, err := h.deps.Sharing.Share(r.Context(), RequesterFromContext(r.Context()), domain.CartID(cartID), req.Email)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		EncodeSharedCart(e, shared)
	})
}

func (h *Handler) accessSharedCart(w http.ResponseWriter, r *http.Request) {
	link, ok := h.link(w, r)
	if !ok {
		return
	}

	cart, decision, err := h.deps.Sharing.Access(r.Context(), RequesterFromContext(r.Context()), link)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if !decision.Allowed {
		h.writeError(w, r, serrors.Wrap(serrors.ErrForbidden,
			&sharing.DeniedError{Reason: decision.Reason}, "shared cart access denied"))

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		EncodeCart(e, cart)
	})
}

func (h *Handler) claimSharedCart(w http.ResponseWriter, r *http.Request) {
	link, ok := h.link(w, r)
	if !ok {
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	req, err := DecodeClaimRequest(body)
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	cart, err := h.deps.Sharing.Claim(r.Context(), RequesterFromContext(r.Context()), link, req.ItemIDs)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		EncodeCart(e, cart)
	})
}

func (h *Handler) link(w http.ResponseWriter, r *http.Request) (sharing.Link, bool) {
	link, err := sharing.NewLink(r.PathValue("cartID"), r.PathValue("timestamp"), r.PathValue("token"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid share link"))

		return sharing.Link{}, false
	}

	return link, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	return bytes.TrimSpace(body), nil
}

// ShareRequest is the body of POST /v1/carts/{cartID}/share.
type ShareRequest struct {
	Email string
}

// DecodeShareRequest decodes a share request. An empty body shares the cart
// without a recipient.
func DecodeShareRequest(body []byte) (ShareRequest, error) {
	var req ShareRequest
	if len(body) == 0 {
		return req, nil
	}

	err := jx.DecodeBytes(body).ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "email":
			if d.Next() == jx.Null {
				return d.Null()
			}
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode email")
			}
			req.Email = v

			return nil
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return ShareRequest{}, errors.Wrap(err, "decode share request")
	}

	return req, nil
}

// ClaimRequest is the body of POST /v1/share/{cartID}/{timestamp}/{token}/claim.
type ClaimRequest struct {
	ItemIDs []domain.LineItemID
}

func DecodeClaimRequest(body []byte) (ClaimRequest, error) {
	var req ClaimRequest
	if len(body) == 0 {
		return req, errors.New("empty body")
	}

	err := jx.DecodeBytes(body).ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "itemIds":
			return d.Arr(func(d *jx.Decoder) error {
				v, err := d.Int64()
				if err != nil {
					return errors.Wrap(err, "decode item id")
				}
				req.ItemIDs = append(req.ItemIDs, domain.LineItemID(v))

				return nil
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return ClaimRequest{}, errors.Wrap(err, "decode claim request")
	}

	return req, nil
}

// EncodeSharedCart writes {"cart": ..., "link": ..., "url": ...}.
func EncodeSharedCart(e *jx.Encoder, shared *sharing.SharedCart) {
	e.ObjStart()
	e.FieldStart("cart")
	EncodeCart(e, shared.Cart)
	e.FieldStart("link")
	e.Str(shared.Link.Path())
	e.FieldStart("url")
	e.Str(shared.URL)
	e.ObjEnd()
}

// EncodeCart writes a cart with its line items. Anonymous owners are null.
func EncodeCart(e *jx.Encoder, cart *domain.Cart) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(int64(cart.ID))
	e.FieldStart("uuid")
	e.Str(cart.UUID.String())
	e.FieldStart("orderType")
	e.Str(cart.OrderType)
	e.FieldStart("label")
	e.Str(cart.Label)
	e.FieldStart("state")
	e.Str(string(cart.State))
	e.FieldStart("isCart")
	e.Bool(cart.IsCart)
	e.FieldStart("ownerId")
	if cart.OwnerID.IsAnonymous() {
		e.Null()
	} else {
		e.Str(cart.OwnerID.String())
	}
	if cart.Email != "" {
		e.FieldStart("email")
		e.Str(cart.Email)
	}
	e.FieldStart("items")
	e.ArrStart()
	for _, item := range cart.Items {
		encodeLineItem(e, item)
	}
	e.ArrEnd()
	e.FieldStart("createdAt")
	e.Str(cart.CreatedAt.UTC().Format(time.RFC3339))
	e.FieldStart("changedAt")
	e.Str(cart.ChangedAt.UTC().Format(time.RFC3339))
	e.ObjEnd()
}

func encodeLineItem(e *jx.Encoder, item domain.LineItem) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(int64(item.ID))
	e.FieldStart("title")
	e.Str(item.Title)
	e.FieldStart("sku")
	e.Str(item.SKU)
	e.FieldStart("quantity")
	e.Int(item.Quantity)
	e.FieldStart("unitPrice")
	e.Int64(item.UnitPrice)
	e.FieldStart("currency")
	e.Str(item.Currency)
	e.ObjEnd()
}
