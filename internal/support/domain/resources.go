package domain

// Resource is one piece of calming content in the support flow.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Choice is one entry point of the support flow.
type Choice struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Choices lists the support options offered after an elevated-risk
// analysis. The whole flow is public: the user may have been sent here
// precisely because they should not hit another login wall.
func Choices() []Choice {
	return []Choice{
		{Path: "/support/music", Title: "Music for Calm", Description: "Relaxing sounds and music to help you feel grounded."},
		{Path: "/support/videos", Title: "Guided Videos", Description: "Breathing and meditation exercises."},
		{Path: "/support/doctors", Title: "Find a Doctor", Description: "Professionals near you, when talking helps most."},
	}
}

func MusicTracks() []Resource {
	return []Resource{
		{Title: "Relaxing Piano Music", URL: "https://www.youtube-nocookie.com/embed/1ZYbU82GVz4"},
		{Title: "Stress Relief Music", URL: "https://www.youtube-nocookie.com/embed/4fY9CXdIoU4"},
	}
}

func GuidedVideos() []Resource {
	return []Resource{
		{Title: "Breathing Exercise", URL: "https://www.youtube-nocookie.com/embed/odADwWzHR24"},
		{Title: "Guided Meditation", URL: "https://www.youtube-nocookie.com/embed/inpok4MKVLM"},
	}
}

func DoctorLocator() Resource {
	return Resource{
		Title: "Doctors Near Me",
		URL:   "https://www.google.com/maps?q=psychiatrist+near+me&output=embed",
	}
}
