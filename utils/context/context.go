package context

import (
	"context"

	"github.com/andrifals/gasstore/constant"
)

func GetAdminUser(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.AdminUserKey)
	if v == nil {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}
