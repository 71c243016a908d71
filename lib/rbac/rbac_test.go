package rbac

import (
	"testing"
	"wfm-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/approval/{id}/approve [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/approval/123-321/approve"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/approval/approve"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/work_session/{id}/summary [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/work_session/qwe-ewr123-wr-12/summary"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/work_session/summary"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`resolve routes only for management`, func(t *testing.T) {
		NewHandler()

		ruleFunc, found := Instance.GetRuleFunc("PUT", "/api/v1/approval/123/approve")
		require.Equal(t, true, found)
		require.Equal(t, false, ruleFunc("u1", models.UserRoleEmployee, "/api/v1/approval/123/approve"))
		require.Equal(t, true, ruleFunc("u1", models.UserRoleManager, "/api/v1/approval/123/approve"))
		require.Equal(t, true, ruleFunc("u1", models.UserRoleAdmin, "/api/v1/approval/123/approve"))

		ruleFunc, found = Instance.GetRuleFunc("POST", "/api/v1/work_session/check_in")
		require.Equal(t, true, found)
		require.Equal(t, true, ruleFunc("u1", models.UserRoleEmployee, "/api/v1/work_session/check_in"))

		_, found = Instance.GetRuleFunc("POST", "/api/v1/unknown")
		require.Equal(t, false, found)
	})
}
