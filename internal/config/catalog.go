package config

// defaultDomains is the shipped portfolio in card order.
var defaultDomains = []string{
	"departmental.de",
	"announces.xyz",
	"responded.xyz",
	"largely.xyz",
	"difficulties.xyz",
	"physically.io",
	"handcuff.uk",
	"millidegree.com",
	"gaming.li",
	"relation.cc",
	"drove.app",
	"cold.wine",
	"fuzz.chat",
	"coloration.uk",
	"coiffure.top",
	"gadget.now",
	"flexure.uk",
	"handmaid.uk",
	"embarkment.uk",
	"credited.uk",
	"mixed.now",
	"coloration.io",
	"womanhood.uk",
	"follow.by",
	"latina.beauty",
	"bella.center",
	"storm.delivery",
	"reopen.info",
	"oppose.info",
	"imitate.info",
	"exclude.info",
	"enlist.info",
	"decrease.info",
	"nomias.com",
	"lodley.com",
	"gps-company.com",
	"glon.net",
	"onfarm.net",
	"xtt.app",
	"botai.uk",
	"gamesai.net",
	"ai0.pro",
	"ledlab.net",
	"2vds.com",
	"06fx.com",
	"lucahost.com",
	"kin7.com",
	"echoice.xyz",
	"virtualbot.app",
	"bondtrading.co",
	"spaceht.com",
	"theai.city",
	"sich.xyz",
	"xn--dubi-noa.xyz",
	"xn--dda.xyz",
	"xn--clck-wpa.click",
	"autat.com",
	"mencare.app",
	"eliteha.com",
	"litepain.com",
	"vauty.com",
	"beau1y.com",
	"dq.baby",
	"bnb.cx",
	"areya.org",
	"thehouses.shop",
	"rossoff.com",
	"laurie.cl",
	"movs.co.uk",
	"myluxury.uk",
	"maryam.biz",
	"elyssa.net",
	"jhnny.com",
	"thomass.org",
}

// defaultCategories are the shipped filter buttons, in button order.
var defaultCategories = []CategoryConfig{
	{
		Key:   "curated",
		Label: "One Word",
		Domains: []string{
			"departmental.de", "announces.xyz", "responded.xyz", "largely.xyz",
			"difficulties.xyz", "physically.io", "handcuff.uk", "millidegree.com", "gaming.li",
			"relation.cc", "drove.app", "cold.wine", "fuzz.chat", "coloration.uk", "coiffure.top",
			"gadget.now", "flexure.uk", "handmaid.uk", "embarkment.uk", "credited.uk",
			"mixed.now", "coloration.io", "womanhood.uk", "follow.by", "latina.beauty",
			"bella.center", "storm.delivery", "reopen.info", "oppose.info", "imitate.info",
			"exclude.info", "enlist.info", "decrease.info",
		},
	},
	{
		Key:   "Tech",
		Label: "Tech",
		Domains: []string{
			"nomias.com", "lodley.com", "gps-company.com", "glon.net", "onfarm.net", "xtt.app",
			"botai.uk", "gamesai.net", "ai0.pro", "ledlab.net", "physically.io", "drove.app",
			"2vds.com", "06fx.com", "lucahost.com", "fuzz.chat", "kin7.com", "gadget.now",
			"echoice.xyz", "coloration.io", "virtualbot.app", "bondtrading.co", "spaceht.com",
			"theai.city", "sich.xyz", "follow.by", "xn--dubi-noa.xyz", "xn--dda.xyz",
			"xn--clck-wpa.click", "storm.delivery", "exclude.info", "autat.com",
		},
	},
	{
		Key:   "AI",
		Label: "AI",
		Domains: []string{
			"nomias.com", "xtt.app", "botai.uk", "gamesai.net", "ai0.pro", "drove.app",
			"virtualbot.app", "theai.city", "gaming.li", "autat.com", "fuzz.chat", "kin7.com",
			"echoice.xyz", "glon.net", "sich.xyz", "xn--dda.xyz", "xn--clck-wpa.click",
			"ledlab.net", "spaceht.com", "onfarm.net", "physically.io", "mencare.app",
			"relation.cc", "2vds.com", "06fx.com", "lucahost.com", "exclude.info", "imitate.info",
		},
	},
	{
		Key:   "SaaS",
		Label: "SaaS",
		Domains: []string{
			"nomias.com", "lodley.com", "xtt.app", "botai.uk", "ai0.pro", "drove.app",
			"mencare.app", "virtualbot.app", "fuzz.chat", "kin7.com", "coloration.io",
			"autat.com", "gamesai.net", "physically.io", "gps-company.com", "lucahost.com",
			"relation.cc", "exclude.info", "enlist.info", "imitate.info", "gadget.now",
			"storm.delivery", "follow.by", "echoice.xyz", "theai.city", "2vds.com", "06fx.com",
			"glon.net", "sich.xyz",
		},
	},
	{
		Key:   "Health",
		Label: "Health",
		Domains: []string{
			"eliteha.com", "physically.io", "mencare.app", "litepain.com", "decrease.info",
			"womanhood.uk", "handmaid.uk", "flexure.uk", "coiffure.top", "vauty.com",
			"beau1y.com", "bella.center", "dq.baby", "latina.beauty",
		},
	},
	{
		Key:   "Beauty",
		Label: "Beauty",
		Domains: []string{
			"vauty.com", "beau1y.com", "coiffure.top", "latina.beauty", "bella.center",
			"coloration.uk", "handmaid.uk", "womanhood.uk", "dq.baby", "eliteha.com",
			"mencare.app", "physically.io",
		},
	},
	{
		Key:   "Travel",
		Label: "Travel",
		Domains: []string{
			"gps-company.com", "drove.app", "embarkment.uk", "autat.com", "storm.delivery",
		},
	},
	{
		Key:   "Finance",
		Label: "Finance",
		Domains: []string{
			"credited.uk", "bondtrading.co", "bnb.cx",
		},
	},
	{
		Key:   "Education",
		Label: "Education",
		Domains: []string{
			"millidegree.com", "imitate.info", "enlist.info", "relation.cc", "difficulties.xyz",
			"areya.org", "physically.io", "decrease.info", "exclude.info", "oppose.info",
			"reopen.info",
		},
	},
	{
		Key:   "Food",
		Label: "Food",
		Domains: []string{
			"onfarm.net", "cold.wine",
		},
	},
	{
		Key:   "RealEstate",
		Label: "Real Estate",
		Domains: []string{
			"thehouses.shop",
		},
	},
	{
		Key:   "Gaming",
		Label: "Gaming",
		Domains: []string{
			"gamesai.net", "gaming.li",
		},
	},
	{
		Key:   "Lifestyle",
		Label: "Lifestyle",
		Domains: []string{
			"rossoff.com", "laurie.cl", "lodley.com", "eliteha.com", "movs.co.uk", "myluxury.uk",
			"announces.xyz", "largely.xyz", "difficulties.xyz", "maryam.biz", "relation.cc",
			"elyssa.net", "jhnny.com", "2vds.com", "kin7.com", "coloration.uk", "flexure.uk",
			"handmaid.uk", "mixed.now", "coloration.io", "womanhood.uk", "sich.xyz",
			"latina.beauty", "vauty.com", "reopen.info", "oppose.info", "imitate.info",
			"enlist.info", "dq.baby", "decrease.info",
		},
	},
	{
		Key:   "Ecommerce",
		Label: "E-commerce",
		Domains: []string{
			"onfarm.net", "departmental.de", "largely.xyz", "cold.wine", "thehouses.shop",
			"gadget.now", "storm.delivery", "dq.baby", "lucahost.com", "autat.com", "kin7.com",
			"06fx.com", "mixed.now", "vauty.com", "latina.beauty", "bella.center", "eliteha.com",
			"2vds.com",
		},
	},
	{
		Key:   "Brandable",
		Label: "Brandable",
		Domains: []string{
			"rossoff.com", "laurie.cl", "nomias.com", "lodley.com", "eliteha.com", "bnb.cx",
			"glon.net", "thomass.org", "myluxury.uk", "largely.xyz", "maryam.biz", "areya.org",
			"2vds.com", "06fx.com", "kin7.com", "elyssa.net", "jhnny.com", "sich.xyz",
			"gaming.li", "reopen.info", "oppose.info", "imitate.info", "enlist.info", "dq.baby",
			"decrease.info", "millidegree.com", "onfarm.net", "coloration.io", "gadget.now",
			"mixed.now",
		},
	},
	{
		Key:   "Portfolio",
		Label: "Portfolio",
		Domains: []string{
			"areya.org", "maryam.biz", "rossoff.com", "jhnny.com", "thomass.org",
		},
	},
}
