package classify

import "github.com/termdeck/termdeck/internal/shared/types"

// defaultRules is the built-in classification table. Evaluation order is
// significant: specific prefixes must come before the broad vendor
// prefixes in the SYSTEM rule, or they would never be reached.
func defaultRules() []Rule {
	return []Rule{
		{
			Category: types.CategorySocial,
			Prefixes: []string{
				"com.whatsapp",
				"com.instagram",
				"com.facebook",
				"com.twitter",
				"com.snapchat",
				"com.discord",
				"com.reddit",
				"com.linkedin",
				"org.telegram",
				"org.thoughtcrime.securesms",
				"org.signal",
			},
		},
		{
			Category: types.CategoryWork,
			Prefixes: []string{
				"com.microsoft",
				"com.slack",
				"com.google.android.apps.docs",
				"com.google.android.gm",
				"com.dropbox",
				"com.notion",
				"com.todoist",
				"com.evernote",
				"us.zoom",
			},
		},
		{
			Category: types.CategoryMedia,
			Prefixes: []string{
				"com.spotify",
				"com.netflix",
				"com.google.android.youtube",
				"com.google.android.apps.youtube",
				"com.soundcloud",
				"tv.twitch",
				"org.videolan",
				"com.plexapp",
			},
		},
		{
			Category: types.CategoryGames,
			Prefixes: []string{
				"com.mojang",
				"com.supercell",
				"com.nintendo",
				"com.rockstargames",
				"com.king.",
				"com.ea.",
				"net.wargaming",
				"com.valvesoftware",
			},
		},
		{
			Category: types.CategoryUtilities,
			Prefixes: []string{
				"com.android.calculator",
				"com.google.android.calculator",
				"com.android.deskclock",
				"com.google.android.deskclock",
				"com.android.calendar",
				"com.google.android.calendar",
				"com.android.camera",
				"com.termux",
				"org.mozilla",
				"com.brave",
				"com.opera",
			},
		},
		{
			Category: types.CategorySystem,
			Prefixes: []string{
				"com.android.",
				"com.google.android.",
				"android",
				"com.samsung.android",
				"org.lineageos",
				"org.gnome.",
				"org.kde.",
			},
		},
	}
}
