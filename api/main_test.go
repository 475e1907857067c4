package api

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/Drolfothesgnir/skim/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	HTTPServerAddress: "0.0.0.0:8080",
	AllowedOrigins:    []string{"*"},
	ParserMaxDepth:    64,
	TrackIDs:          true,
	TrackClasses:      true,
	MaxInputBytes:     1 << 16,
}

func newTestService(t *testing.T) *Service {
	service, err := NewService(testConfig)
	require.NoError(t, err)
	return service
}
