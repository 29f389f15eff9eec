package jobs

import "github.com/tanq16/sdlfetch/internal/utils"

type definition struct {
	name   string
	url    string
	folder string
}

var sdl2Definitions = []definition{
	{"SDL2", "https://www.libsdl.org/release/SDL2-devel-2.0.16-VC.zip", "SDL2-2.0.16"},
	{"SDL2_image", "https://www.libsdl.org/projects/SDL_image/release/SDL2_image-devel-2.0.5-VC.zip", "SDL2_image-2.0.5"},
	{"SDL2_mixer", "https://www.libsdl.org/projects/SDL_mixer/release/SDL2_mixer-devel-2.0.4-VC.zip", "SDL2_mixer-2.0.4"},
	{"SDL2_net", "https://www.libsdl.org/projects/SDL_net/release/SDL2_net-devel-2.0.1-VC.zip", "SDL2_net-2.0.1"},
	{"SDL2_ttf", "https://www.libsdl.org/projects/SDL_ttf/release/SDL2_ttf-devel-2.0.15-VC.zip", "SDL2_ttf-2.0.15"},
}

// Default returns the SDL2 Visual C++ development packages in install order.
func Default() []utils.Job {
	jobs := make([]utils.Job, 0, len(sdl2Definitions))
	for _, d := range sdl2Definitions {
		jobs = append(jobs, utils.NewJob(d.name, d.url, d.folder))
	}
	return jobs
}
