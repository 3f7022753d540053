package utils

import "net/url"

// DefaultAvatarURL derives the avatar for a member that was added without
// one. The name is query-encoded (spaces become "+") and the background,
// text color and size parameters are fixed, so the same name always maps
// to the same URL.
func DefaultAvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) +
		"&background=ff642c&color=fff&size=200"
}
