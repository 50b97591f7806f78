package middleware

import (
	"context"
	"net/http"
	"strconv"
)

const accountIDKey ctxKey = iota + 1

// AccountIDHeader carries the caller's account ID. Identity issuance is
// handled upstream; the API trusts this header as-is.
const AccountIDHeader = "X-Account-Id"

// Identity extracts the caller's account ID from the request header and
// stores it in the context. Requests without the header proceed as
// anonymous; handlers that require identity reject those themselves.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(AccountIDHeader)
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		accountID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || accountID <= 0 {
			http.Error(w, "invalid "+AccountIDHeader+" header", http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAccountID retrieves the caller's account ID from context.
// Returns 0 for anonymous requests.
func GetAccountID(ctx context.Context) int64 {
	if id, ok := ctx.Value(accountIDKey).(int64); ok {
		return id
	}
	return 0
}
