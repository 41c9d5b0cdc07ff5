// @title           discoteka API
// @version         1.0
// @description     Album catalog with categories, tags, favorites, and comments. Authenticate with a session cookie from /auth/login.
// @BasePath        /api/v1
package api
