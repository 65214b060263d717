package handlers

import "ytdlp-direct/config"

type Footer struct {
	BuildDate    string
	BuildId      string
	BuildIdShort string
}

func MakeFooter() Footer {
	sha := config.GetGitSHA()
	short := sha
	if len(short) > 7 {
		short = short[0:7]
	}
	return Footer{
		BuildDate:    config.GetBuildDate(),
		BuildId:      sha,
		BuildIdShort: short,
	}
}
