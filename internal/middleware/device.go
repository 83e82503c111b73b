package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Classe de viewport usada pelas páginas web para escolher o shell de
// navegação. As três variantes embrulham as mesmas telas; só a navegação
// muda.
type DeviceClass string

const (
	DeviceMobile  DeviceClass = "mobile"
	DeviceTablet  DeviceClass = "tablet"
	DeviceDesktop DeviceClass = "desktop"
)

const ContextDevice = "deviceClass"

func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextDevice, ClassifyUserAgent(c.Request.UserAgent()))
		c.Next()
	}
}

// ClassifyUserAgent é o substituto servidor do hook de breakpoint do
// cliente: iPad/tablet e Android sem "Mobile" contam como tablet, demais
// assinaturas móveis como mobile, o resto como desktop.
func ClassifyUserAgent(ua string) DeviceClass {
	ua = strings.ToLower(ua)

	switch {
	case strings.Contains(ua, "ipad"), strings.Contains(ua, "tablet"):
		return DeviceTablet
	case strings.Contains(ua, "android") && !strings.Contains(ua, "mobile"):
		return DeviceTablet
	case strings.Contains(ua, "mobi"), strings.Contains(ua, "iphone"), strings.Contains(ua, "android"):
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

func DeviceFrom(c *gin.Context) DeviceClass {
	if v, ok := c.Get(ContextDevice); ok {
		if d, ok := v.(DeviceClass); ok {
			return d
		}
	}
	return DeviceDesktop
}
