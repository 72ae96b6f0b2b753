package constants

const (
	AppBazaarServer = "bazaar-server"
	AudienceClient  = "audience-client"
)
