package main

import (
	"shoe-design-api/cmd"

	_ "shoe-design-api/docs"
)

// @title           Shoe Design API
// @version         1.0
// @description     HTTP boundary of the "design your shoe" platform: account, designs, designers and image generation.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey CallerID
// @in header
// @name X-User-Id
// @description Caller ID forwarded by the authenticating gateway.
func main() {
	cmd.Execute()
}
