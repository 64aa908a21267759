package middleware

import (
	"net/http"
	"regexp"
)

// legacyTaskPattern matches the retired /tasks prefix.
var legacyTaskPattern = regexp.MustCompile(`^/tasks/(.*)$`)

// LegacyRedirect redirects /tasks/* to /todos/*. It runs before route
// matching so the legacy paths never reach the dispatcher.
func LegacyRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m := legacyTaskPattern.FindStringSubmatch(r.URL.Path); m != nil {
			target := "/todos/" + m[1]
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
