package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const contractPath = "../../api/openapi.yaml"

var httpMethods = map[string]bool{
	"get": true, "post": true, "put": true, "patch": true, "delete": true,
}

// stubServer only satisfies the interface; its handlers are never reached.
type stubServer struct {
	ServerInterface
}

type operation struct {
	OperationID string `yaml:"operationId"`
}

// documentedOperations maps "METHOD /path" to the operationId declared in api/openapi.yaml.
func documentedOperations(t *testing.T) map[string]string {
	t.Helper()

	raw, err := os.ReadFile(contractPath)
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]yaml.Node `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Paths)

	ops := make(map[string]string)
	for path, item := range doc.Paths {
		fiberPath := strings.NewReplacer("{", ":", "}", "").Replace(path)
		for method, node := range item {
			if !httpMethods[method] {
				continue
			}
			var op operation
			require.NoError(t, node.Decode(&op), "%s %s", method, path)
			require.NotEmpty(t, op.OperationID, "%s %s has no operationId", method, path)
			ops[strings.ToUpper(method)+" "+fiberPath] = op.OperationID
		}
	}
	return ops
}

func TestContractMatchesRegisteredRoutes(t *testing.T) {
	documented := documentedOperations(t)

	app := fiber.New()
	RegisterHandlers(app, stubServer{})

	registered := make(map[string]bool)
	for _, r := range app.GetRoutes(true) {
		if r.Method == fiber.MethodHead {
			continue
		}
		registered[r.Method+" "+r.Path] = true
	}

	var missing, undocumented []string
	for route := range documented {
		if !registered[route] {
			missing = append(missing, route)
		}
	}
	for route := range registered {
		if _, ok := documented[route]; !ok {
			undocumented = append(undocumented, route)
		}
	}
	sort.Strings(missing)
	sort.Strings(undocumented)

	require.Empty(t, missing, "documented but not routed")
	require.Empty(t, undocumented, "routed but not documented")
}

func TestContractOperationIDsMatchServerInterface(t *testing.T) {
	documented := documentedOperations(t)
	si := reflect.TypeOf((*ServerInterface)(nil)).Elem()

	seen := make(map[string]bool, len(documented))
	for route, id := range documented {
		_, ok := si.MethodByName(id)
		require.True(t, ok, "%s: operationId %s has no ServerInterface method", route, id)
		require.False(t, seen[id], "operationId %s declared twice", id)
		seen[id] = true
	}
	require.Len(t, seen, si.NumMethod())
}

// Operation middlewares are keyed by operationId, so every documented id must select exactly its own route.
func TestOperationMiddlewaresFollowOperationIDs(t *testing.T) {
	documented := documentedOperations(t)

	hits := make(map[string]int)
	mw := make(map[string][]fiber.Handler, len(documented))
	for _, id := range documented {
		mw[id] = []fiber.Handler{func(c *fiber.Ctx) error {
			hits[id]++
			return c.SendStatus(http.StatusTeapot)
		}}
	}

	app := fiber.New()
	RegisterHandlersWithOptions(app, stubServer{}, FiberServerOptions{OperationMiddlewares: mw})

	for route, id := range documented {
		method, path, _ := strings.Cut(route, " ")
		path = strings.ReplaceAll(path, ":id", "3f0c7a52-4a7e-4c43-9d7e-0f5d1c2b9a10")

		resp, err := app.Test(httptest.NewRequest(method, path, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusTeapot, resp.StatusCode, route)
		require.Equal(t, 1, hits[id], route)
	}
}
