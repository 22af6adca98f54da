package web

import (
	"net/http"
	"strings"
)

// FormValues copia los campos pedidos de r.PostForm (ParseForm ya llamado).
func FormValues(r *http.Request, names ...string) map[string]string {
	out := make(map[string]string, len(names))
	for _, n := range names {
		out[n] = strings.TrimSpace(r.PostFormValue(n))
	}
	return out
}
