package log

const (
	KeyAppName            = "app"
	KeyRequestID          = "requestId"
	KeyProcess            = "process"
	KeyTag                = "tag"
	KeyConfig             = "config"
	KeyRequestBody        = "requestBody"
	KeyRequestHeader      = "requestHeader"
	KeyRequestHost        = "host"
	KeyRequestIp          = "requesterIP"
	KeyRequestMethod      = "requestMethod"
	KeyRequestURI         = "requestURI"
	KeyRequestURL         = "requestURL"
	KeyUserID             = "userId"
	KeyProductID          = "productId"
	KeyCartItemID         = "cartItemId"
	KeyCategory           = "category"
	KeyQuantity           = "quantity"
	KeyCacheKey           = "cacheKey"
	KeyPhone              = "phone"
	KeyDbURL              = "dbURL"
	KeyTraceID            = "traceId"
	KeySpanID             = "spanId"
)
