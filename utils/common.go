package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

func GetUserID(c *gin.Context) *uint {
	if value, exists := c.Get("user_id"); exists {
		if id, ok := value.(uint); ok {
			return &id
		}
	}
	return nil
}

func GetUserRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if role == nil {
		return ""
	}
	return role.(string)
}

func PtrString(s string) *string {
	return &s
}

func StringValue(ptr *string) string {
	if ptr != nil {
		return *ptr
	}
	return ""
}

func ToJSONString(v interface{}) *string {
	if v == nil {
		return nil
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	str := string(bytes)
	return &str
}
