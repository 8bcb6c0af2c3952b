package services

import (
	"time"

	"github.com/grich88/civic/models"
)

// defaultPlugins returns the built-in vendor integrations. Catalog
// counters are seeded with realistic historical numbers so the demo
// data behaves like a live system.
func defaultPlugins() []*models.VendorPlugin {
	return []*models.VendorPlugin{
		humanitixPlugin(),
		citizenTicketPlugin(),
		tickEthicPlugin(),
		ticketeboPlugin(),
	}
}

func daysFromNow(days int) *time.Time {
	t := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	return &t
}

func humanitixPlugin() *models.VendorPlugin {
	catalog := &models.RewardCatalog{
		VendorID:   "humanitix",
		VendorName: "Humanitix",
		Tiers: []*models.RewardTier{
			{
				ID:                 "humanitix-free-ticket",
				VendorID:           "humanitix",
				Name:               "Free Event Ticket",
				Description:        "Get a free ticket to any Humanitix event under $50",
				PointsRequired:     500,
				RewardType:         models.RewardFreeTicket,
				Value:              "Free ticket up to $50",
				IsActive:           true,
				MaxRedemptions:     100,
				CurrentRedemptions: 23,
				Terms:              "Valid for events under $50. Cannot be combined with other offers.",
			},
			{
				ID:                 "humanitix-discount-20",
				VendorID:           "humanitix",
				Name:               "20% Off Any Event",
				Description:        "Get 20% discount on any Humanitix event ticket",
				PointsRequired:     200,
				RewardType:         models.RewardDiscount,
				Value:              "20% off",
				IsActive:           true,
				MaxRedemptions:     500,
				CurrentRedemptions: 127,
				Terms:              "Valid for 30 days from redemption.",
			},
			{
				ID:                 "humanitix-charity-match",
				VendorID:           "humanitix",
				Name:               "Double Charity Impact",
				Description:        "We will double your charity contribution on your next purchase",
				PointsRequired:     300,
				RewardType:         models.RewardExperience,
				Value:              "2x charity impact",
				IsActive:           true,
				MaxRedemptions:     200,
				CurrentRedemptions: 45,
				Terms:              "Applied automatically to your next ticket purchase.",
			},
		},
		SpecialOffers: []*models.RewardTier{
			{
				ID:                 "humanitix-vip-upgrade",
				VendorID:           "humanitix",
				Name:               "VIP Experience Upgrade",
				Description:        "Upgrade to VIP access at select events",
				PointsRequired:     1000,
				RewardType:         models.RewardUpgrade,
				Value:              "VIP upgrade",
				IsActive:           true,
				MaxRedemptions:     50,
				CurrentRedemptions: 8,
				ValidUntil:         daysFromNow(30),
				Terms:              "Subject to availability. Valid at participating venues only.",
			},
		},
	}

	return &models.VendorPlugin{
		ID:          "humanitix",
		Name:        "Humanitix",
		Type:        models.PluginTicketing,
		Description: "Tickets for good, not greed. 100% of profits go to charity.",
		LogoURL:     "https://humanitix.com/logo.png",
		WebsiteURL:  "https://humanitix.com",
		APIEndpoint: "https://api.humanitix.com/v1",
		IsActive:    true,
		SocialImpact: models.SocialImpact{
			Type:        models.ImpactCharity,
			Description: "100% of booking fee profits donated to education and healthcare charities",
			Beneficiary: "Various education and healthcare charities worldwide",
			ImpactMetrics: models.ImpactMetrics{
				TotalImpact:     "$10M+ donated to date",
				ImpactPerTicket: "100% of booking fees",
			},
		},
		Configuration: models.PluginConfiguration{
			SupportedFeatures: []string{"ticket-sales", "charity-donation", "impact-tracking", "anti-scalping", "loyalty-rewards"},
		},
		RewardCatalog: catalog,
	}
}

func citizenTicketPlugin() *models.VendorPlugin {
	catalog := &models.RewardCatalog{
		VendorID:   "citizen-ticket",
		VendorName: "Citizen Ticket",
		Tiers: []*models.RewardTier{
			{
				ID:                 "citizen-free-eco-event",
				VendorID:           "citizen-ticket",
				Name:               "Free Eco-Friendly Event",
				Description:        "Free ticket to any sustainable event",
				PointsRequired:     400,
				RewardType:         models.RewardFreeTicket,
				Value:              "Free sustainable event ticket",
				IsActive:           true,
				MaxRedemptions:     75,
				CurrentRedemptions: 31,
				Terms:              "Valid for certified eco-friendly events only.",
			},
			{
				ID:                 "citizen-plant-tree",
				VendorID:           "citizen-ticket",
				Name:               "Plant a Tree in Your Name",
				Description:        "We will plant an additional tree in your name",
				PointsRequired:     150,
				RewardType:         models.RewardExperience,
				Value:              "Extra tree planted",
				IsActive:           true,
				MaxRedemptions:     1000,
				CurrentRedemptions: 89,
				Terms:              "Tree will be planted in The National Forest.",
			},
			{
				ID:                 "citizen-carbon-offset",
				VendorID:           "citizen-ticket",
				Name:               "Carbon Offset Voucher",
				Description:        "Offset 1 ton of CO2 emissions",
				PointsRequired:     250,
				RewardType:         models.RewardVoucher,
				Value:              "1 ton CO2 offset",
				IsActive:           true,
				MaxRedemptions:     300,
				CurrentRedemptions: 67,
				Terms:              "Verified carbon offset through certified programs.",
			},
		},
		SpecialOffers: []*models.RewardTier{
			{
				ID:                 "citizen-backstage-pass",
				VendorID:           "citizen-ticket",
				Name:               "Eco-Festival Backstage Pass",
				Description:        "Behind-the-scenes access at eco-friendly festivals",
				PointsRequired:     800,
				RewardType:         models.RewardUpgrade,
				Value:              "Backstage access",
				IsActive:           true,
				MaxRedemptions:     25,
				CurrentRedemptions: 3,
				ValidUntil:         daysFromNow(45),
				Terms:              "Valid at select eco-festivals. Must be 18+.",
			},
		},
	}

	return &models.VendorPlugin{
		ID:          "citizen-ticket",
		Name:        "Citizen Ticket",
		Type:        models.PluginTicketing,
		Description: "Sustainable ticketing platform that plants trees for every event.",
		LogoURL:     "https://citizenticket.com/logo.png",
		WebsiteURL:  "https://citizenticket.com",
		APIEndpoint: "https://api.citizenticket.com/v1",
		IsActive:    true,
		SocialImpact: models.SocialImpact{
			Type:         models.ImpactTrees,
			Description:  "Plants native woodland trees to create sustainable ecosystems",
			TreesPlanted: 3000,
			Beneficiary:  "The National Forest Company (UK)",
			ImpactMetrics: models.ImpactMetrics{
				TotalImpact:     "3,000+ trees planted",
				ImpactPerTicket: "Variable tree planting per event",
			},
		},
		Configuration: models.PluginConfiguration{
			SupportedFeatures: []string{"ticket-sales", "tree-planting", "sustainability-tracking", "carbon-offset", "eco-rewards"},
		},
		RewardCatalog: catalog,
	}
}

func tickEthicPlugin() *models.VendorPlugin {
	catalog := &models.RewardCatalog{
		VendorID:   "tickethic",
		VendorName: "TickEthic",
		Tiers: []*models.RewardTier{
			{
				ID:                 "tickethic-free-green-event",
				VendorID:           "tickethic",
				Name:               "Free Green Event Ticket",
				Description:        "Complimentary ticket to any eco-conscious event",
				PointsRequired:     350,
				RewardType:         models.RewardFreeTicket,
				Value:              "Free eco-event ticket",
				IsActive:           true,
				MaxRedemptions:     60,
				CurrentRedemptions: 18,
				Terms:              "Automatically plants 1 additional tree.",
			},
			{
				ID:                 "tickethic-10-trees",
				VendorID:           "tickethic",
				Name:               "Plant 10 Extra Trees",
				Description:        "Plant 10 additional trees through WeForest",
				PointsRequired:     300,
				RewardType:         models.RewardExperience,
				Value:              "10 trees planted",
				IsActive:           true,
				MaxRedemptions:     200,
				CurrentRedemptions: 54,
				Terms:              "Trees planted in verified reforestation projects.",
			},
			{
				ID:                 "tickethic-discount-eco",
				VendorID:           "tickethic",
				Name:               "Eco-Event Discount",
				Description:        "25% off any environmentally certified event",
				PointsRequired:     180,
				RewardType:         models.RewardDiscount,
				Value:              "25% off eco-events",
				IsActive:           true,
				MaxRedemptions:     150,
				CurrentRedemptions: 72,
				Terms:              "Valid for events with environmental certification.",
			},
		},
		SpecialOffers: []*models.RewardTier{
			{
				ID:                 "tickethic-forest-visit",
				VendorID:           "tickethic",
				Name:               "Forest Project Visit",
				Description:        "Guided tour of WeForest reforestation project",
				PointsRequired:     1200,
				RewardType:         models.RewardExperience,
				Value:              "Forest project tour",
				IsActive:           true,
				MaxRedemptions:     10,
				CurrentRedemptions: 1,
				ValidUntil:         daysFromNow(60),
				Terms:              "Transportation not included. Must be booked 30 days in advance.",
			},
		},
	}

	return &models.VendorPlugin{
		ID:          "tickethic",
		Name:        "TickEthic",
		Type:        models.PluginTicketing,
		Description: "10 tickets sold = 1 tree planted. Eco-responsible ticketing.",
		LogoURL:     "https://tickethic.fr/logo.png",
		WebsiteURL:  "https://tickethic.fr",
		APIEndpoint: "https://api.tickethic.fr/v1",
		IsActive:    true,
		SocialImpact: models.SocialImpact{
			Type:        models.ImpactTrees,
			Description: "Plants one tree for every 10 tickets sold through WeForest partnership",
			Beneficiary: "WeForest reforestation projects",
			ImpactMetrics: models.ImpactMetrics{
				TotalImpact:     "11,500+ trees planted",
				ImpactPerTicket: "1 tree per 10 tickets",
			},
		},
		Configuration: models.PluginConfiguration{
			SupportedFeatures: []string{"ticket-sales", "tree-planting", "environmental-impact", "sustainability-reporting", "green-rewards"},
		},
		RewardCatalog: catalog,
	}
}

func ticketeboPlugin() *models.VendorPlugin {
	catalog := &models.RewardCatalog{
		VendorID:   "ticketebo",
		VendorName: "Ticketebo",
		Tiers: []*models.RewardTier{
			{
				ID:                 "ticketebo-free-carbon-neutral",
				VendorID:           "ticketebo",
				Name:               "Free Carbon Neutral Event",
				Description:        "Free ticket to any carbon neutral certified event",
				PointsRequired:     450,
				RewardType:         models.RewardFreeTicket,
				Value:              "Free carbon neutral ticket",
				IsActive:           true,
				MaxRedemptions:     80,
				CurrentRedemptions: 29,
				Terms:              "Valid for carbon negative certified events.",
			},
			{
				ID:                 "ticketebo-mangrove-trees",
				VendorID:           "ticketebo",
				Name:               "Plant 5 Mangrove Trees",
				Description:        "Plant 5 mangrove trees for coastal restoration",
				PointsRequired:     200,
				RewardType:         models.RewardExperience,
				Value:              "5 mangrove trees",
				IsActive:           true,
				MaxRedemptions:     250,
				CurrentRedemptions: 91,
				Terms:              "Planted in verified coastal restoration projects.",
			},
			{
				ID:                 "ticketebo-paperless-bonus",
				VendorID:           "ticketebo",
				Name:               "Paperless Event Bonus",
				Description:        "Extra points for choosing paperless tickets",
				PointsRequired:     100,
				RewardType:         models.RewardVoucher,
				Value:              "+50 bonus points",
				IsActive:           true,
				MaxRedemptions:     500,
				CurrentRedemptions: 156,
				Terms:              "Applied when you choose SMS delivery over email.",
			},
		},
		SpecialOffers: []*models.RewardTier{
			{
				ID:                 "ticketebo-climate-summit",
				VendorID:           "ticketebo",
				Name:               "Climate Action Summit VIP",
				Description:        "VIP access to climate action conferences",
				PointsRequired:     900,
				RewardType:         models.RewardUpgrade,
				Value:              "Climate summit VIP",
				IsActive:           true,
				MaxRedemptions:     15,
				CurrentRedemptions: 4,
				ValidUntil:         daysFromNow(90),
				Terms:              "Includes networking reception and speaker meet & greet.",
			},
		},
	}

	return &models.VendorPlugin{
		ID:          "ticketebo",
		Name:        "Ticketebo",
		Type:        models.PluginTicketing,
		Description: "Carbon negative ticketing with Trees for Change program.",
		LogoURL:     "https://ticketebo.co.uk/logo.png",
		WebsiteURL:  "https://ticketebo.co.uk",
		APIEndpoint: "https://api.ticketebo.co.uk/v1",
		IsActive:    true,
		SocialImpact: models.SocialImpact{
			Type:        models.ImpactCarbonOffset,
			Description: "Carbon negative business with mangrove reforestation projects",
			Beneficiary: "Mangrove reforestation and carbon offset projects",
			ImpactMetrics: models.ImpactMetrics{
				TotalImpact:     "Carbon negative since 2020",
				ImpactPerTicket: "Up to 3 trees per paperless ticket",
			},
		},
		Configuration: models.PluginConfiguration{
			SupportedFeatures: []string{"ticket-sales", "carbon-offset", "tree-planting", "paperless-incentives", "climate-rewards"},
		},
		RewardCatalog: catalog,
	}
}

// nativeEvents returns the platform's own (non-vendor) events
func nativeEvents() []models.Event {
	return []models.Event{
		{
			ID:                    "native-1",
			Name:                  "Civic Tech Meetup",
			Description:           "Monthly meetup for civic technology enthusiasts",
			Date:                  time.Now().Add(3 * 24 * time.Hour),
			Venue:                 "Tech Hub",
			Organizer:             "Civic Impact",
			ImageURL:              "https://images.unsplash.com/photo-1515187029135-18ee286d815b?w=800&h=600&fit=crop",
			Price:                 0,
			MaxCapacity:           100,
			TicketsSold:           25,
			IsAntiScalpingEnabled: false,
			LoyaltyPointsReward:   5,
			SocialImpact: &models.SocialImpact{
				Type:        models.ImpactEducation,
				Description: "Promoting civic engagement through technology education",
				Beneficiary: "Local community",
				ImpactMetrics: models.ImpactMetrics{
					TotalImpact:     "Educational workshops for 500+ participants",
					ImpactPerTicket: "Contributing to digital literacy",
				},
			},
		},
		{
			ID:                    "native-2",
			Name:                  "Green Finance Summit",
			Description:           "Sustainable finance and impact investing conference",
			Date:                  time.Now().Add(10 * 24 * time.Hour),
			Venue:                 "Convention Center",
			Organizer:             "Civic Impact",
			ImageURL:              "https://images.unsplash.com/photo-1569163139394-de4e4f43e4e5?w=800&h=600&fit=crop",
			Price:                 150,
			MaxCapacity:           300,
			TicketsSold:           89,
			IsAntiScalpingEnabled: true,
			LoyaltyPointsReward:   50,
			SocialImpact: &models.SocialImpact{
				Type:        models.ImpactEducation,
				Description: "Advancing sustainable finance practices",
				Beneficiary: "Climate action initiatives",
				ImpactMetrics: models.ImpactMetrics{
					TotalImpact:     "$1M+ in sustainable investments facilitated",
					ImpactPerTicket: "Supporting green finance education",
				},
			},
		},
	}
}
