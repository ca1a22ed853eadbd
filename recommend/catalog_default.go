package recommend

import "github.com/mental-health-mirror/mood-core/mood"

// DefaultCatalog builds the built-in catalog. Each call returns a fresh value.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultEntries())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultEntries() map[mood.Mood]map[Category][]Entry {
	return map[mood.Mood]map[Category][]Entry{
		mood.Happy: {
			Music: {
				{Title: "Happy Upbeat Playlist", Description: "Energetic songs to match your positive mood", Link: "https://open.spotify.com/playlist/37i9dQZF1DX3rxVfibe1L0"},
				{Title: "Feel-Good Classics", Description: "Timeless songs that will keep your good mood going", Link: "https://open.spotify.com/playlist/37i9dQZF1DX9XIFQuFvzM4"},
			},
			Video: {
				{Title: "Funny Animal Compilations", Description: "Cute and funny animal videos to keep you smiling", Link: "https://www.youtube.com/results?search_query=funny+animal+compilation"},
				{Title: "Comedy Specials", Description: "Laugh out loud with these stand-up comedy shows", Link: "https://www.youtube.com/results?search_query=best+comedy+specials"},
			},
			Activity: {
				{Title: "Creative Expression", Description: "Channel your positive energy into a creative project like painting or crafting"},
				{Title: "Social Connection", Description: "Share your good mood with friends or family - plan a get-together"},
			},
			Journal: {
				{Title: "Gratitude Reflection", Description: "Write down three things you're grateful for today"},
				{Title: "Positive Moments", Description: "Document what made you happy today so you can revisit these moments later"},
			},
		},
		mood.Sad: {
			Music: {
				{Title: "Calm & Comforting Playlist", Description: "Soothing music to help process your emotions", Link: "https://open.spotify.com/playlist/37i9dQZF1DX3Ogo9pFvBkY"},
				{Title: "Uplifting Melodies", Description: "Gently uplifting songs to improve your mood", Link: "https://open.spotify.com/playlist/37i9dQZF1DX9tPFwDMOaN1"},
			},
			Video: {
				{Title: "Heartwarming Stories", Description: "Videos that restore faith in humanity", Link: "https://www.youtube.com/results?search_query=heartwarming+stories+that+restore+faith+in+humanity"},
				{Title: "Relaxing Nature Documentaries", Description: "Immerse yourself in the beauty of nature", Link: "https://www.youtube.com/results?search_query=beautiful+nature+documentary"},
			},
			Activity: {
				{Title: "Gentle Movement", Description: "A short, gentle walk outdoors to get fresh air and shift your perspective"},
				{Title: "Self-Care Ritual", Description: "Take a warm bath or shower, make some tea, and wrap yourself in a cozy blanket"},
			},
			Journal: {
				{Title: "Emotional Release", Description: "Write freely about what you're feeling without judgment"},
				{Title: "Self-Compassion Letter", Description: "Write to yourself with the same kindness you'd offer a good friend"},
			},
		},
		mood.Anxious: {
			Music: {
				{Title: "Calm Meditation Music", Description: "Peaceful sounds to help reduce anxiety", Link: "https://open.spotify.com/playlist/37i9dQZF1DX3Ogo9pFvBkY"},
				{Title: "Ambient Soundscapes", Description: "Ambient music to help you focus and calm your mind", Link: "https://open.spotify.com/playlist/37i9dQZF1DX3Ogo9pFvBkY"},
			},
			Video: {
				{Title: "Guided Breathing Exercises", Description: "Follow along with these calming breathing techniques", Link: "https://www.youtube.com/results?search_query=guided+breathing+exercises+for+anxiety"},
				{Title: "Gentle Yoga for Anxiety", Description: "Simple yoga poses to release tension", Link: "https://www.youtube.com/results?search_query=gentle+yoga+for+anxiety+relief"},
			},
			Activity: {
				{Title: "5-4-3-2-1 Grounding Exercise", Description: "Name 5 things you can see, 4 things you can touch, 3 things you can hear, 2 things you can smell, and 1 thing you can taste"},
				{Title: "Progressive Muscle Relaxation", Description: "Tense and then release each muscle group in your body to release physical tension"},
			},
			Journal: {
				{Title: "Worry Dump", Description: "Write down all your worries to get them out of your head"},
				{Title: "Evidence Challenging", Description: "List your anxious thoughts and then write evidence for and against them"},
			},
		},
		mood.Angry: {
			Music: {
				{Title: "Calming Classical", Description: "Soothing classical pieces to help you cool down", Link: "https://open.spotify.com/playlist/37i9dQZF1DWWEJlAGA9gs0"},
				{Title: "Release Playlist", Description: "Music to help process and release anger", Link: "https://open.spotify.com/playlist/37i9dQZF1DX3YSRoSdA634"},
			},
			Video: {
				{Title: "Guided Anger Meditation", Description: "Meditation specifically designed to help with anger", Link: "https://www.youtube.com/results?search_query=guided+meditation+for+anger"},
				{Title: "Nature Time-lapses", Description: "Beautiful, slow-moving nature videos to shift your focus", Link: "https://www.youtube.com/results?search_query=beautiful+nature+time+lapse"},
			},
			Activity: {
				{Title: "Physical Release", Description: "Go for a run, hit a pillow, or do jumping jacks to release the physical energy of anger"},
				{Title: "Cool Down Strategy", Description: "Place a cool washcloth on your face or neck, or hold an ice cube - the cold sensation can help reset your nervous system"},
			},
			Journal: {
				{Title: "Anger Letter (Don't Send)", Description: "Write an uncensored letter expressing your feelings, but don't send it"},
				{Title: "Needs Identification", Description: "What need isn't being met? Write about what you really need in this situation"},
			},
		},
		mood.Neutral: {
			Music: {
				{Title: "Discover Weekly", Description: "Explore new music tailored to your taste", Link: "https://open.spotify.com/playlist/37i9dQZEVXcQ9Aow7qH0GW"},
				{Title: "Focus Playlist", Description: "Background music to help you focus on tasks", Link: "https://open.spotify.com/playlist/37i9dQZF1DX8NTLI2TtZa6"},
			},
			Video: {
				{Title: "Fascinating Documentaries", Description: "Learn something new and interesting", Link: "https://www.youtube.com/results?search_query=best+short+documentaries"},
				{Title: "TED Talks", Description: "Inspiring talks on various topics", Link: "https://www.youtube.com/c/TED/videos"},
			},
			Activity: {
				{Title: "Skill Building", Description: "Use this neutral state to learn something new or practice a skill"},
				{Title: "Mindful Activity", Description: "Do a routine activity (like washing dishes) but with complete focus and attention to the sensory experience"},
			},
			Journal: {
				{Title: "Goal Setting", Description: "Use this balanced state to think about your goals and what steps you can take toward them"},
				{Title: "Reflection Questions", Description: "What's been on your mind lately? What are you looking forward to?"},
			},
		},
		mood.Tired: {
			Music: {
				{Title: "Gentle Wake-Up Playlist", Description: "Soft, gradually energizing music", Link: "https://open.spotify.com/playlist/37i9dQZF1DX1n9whBbBKoL"},
				{Title: "Low-Fi Beats", Description: "Relaxing background music that won't overstimulate", Link: "https://open.spotify.com/playlist/37i9dQZF1DWWQRwui0ExPn"},
			},
			Video: {
				{Title: "Gentle Morning Yoga", Description: "Easy stretches to wake up your body", Link: "https://www.youtube.com/results?search_query=gentle+morning+yoga"},
				{Title: "Motivational Short Videos", Description: "Brief inspiration to get you going", Link: "https://www.youtube.com/results?search_query=short+motivational+videos"},
			},
			Activity: {
				{Title: "Nature Reset", Description: "Spend 10 minutes outside in natural light to help reset your circadian rhythm"},
				{Title: "Micro-Exercise", Description: "Do just 5 minutes of movement - often that's enough to boost your energy"},
			},
			Journal: {
				{Title: "Energy Audit", Description: "What's draining your energy lately? What gives you energy?"},
				{Title: "Rest Reflection", Description: "Are you getting enough quality rest? What could help improve your sleep?"},
			},
		},
		mood.Energetic: {
			Music: {
				{Title: "Workout Beats", Description: "High-energy music for maximum motivation", Link: "https://open.spotify.com/playlist/37i9dQZF1DX76Wlfdnj7AP"},
				{Title: "Dance Party Mix", Description: "Upbeat songs to match your energy", Link: "https://open.spotify.com/playlist/37i9dQZF1DX0BcQWzuB7ZO"},
			},
			Video: {
				{Title: "Dance Workouts", Description: "Fun dance routines to channel your energy", Link: "https://www.youtube.com/results?search_query=fun+dance+workout"},
				{Title: "DIY Project Tutorials", Description: "Productive ways to use your high energy", Link: "https://www.youtube.com/results?search_query=quick+DIY+projects"},
			},
			Activity: {
				{Title: "Creative Project", Description: "Start that project you've been thinking about - your energy will help you make progress"},
				{Title: "High Intensity Exercise", Description: "Channel your energy into a workout that will leave you feeling accomplished"},
			},
			Journal: {
				{Title: "Inspiration Capture", Description: "Write down all the ideas coming to you while your energy is high"},
				{Title: "Achievement Planning", Description: "What could you accomplish today with this energy? Make an action plan"},
			},
		},
	}
}
