package constants

const (
	CategoryCrypto = "crypto"
	CategoryGold   = "gold"
)

type FeedSeed struct {
	Name     string
	Category string
	URL      string
}

// GetDefaultFeedSources returns the feeds the registry is seeded with on
// first run.
func GetDefaultFeedSources() []FeedSeed {
	var feedSeeds []FeedSeed
	feedSeeds = append(feedSeeds, FeedSeed{Name: "coindesk", Category: CategoryCrypto, URL: "https://www.coindesk.com/arc/outboundfeeds/rss/"})
	feedSeeds = append(feedSeeds, FeedSeed{Name: "cointelegraph", Category: CategoryCrypto, URL: "https://cointelegraph.com/rss"})
	feedSeeds = append(feedSeeds, FeedSeed{Name: "decrypt", Category: CategoryCrypto, URL: "https://decrypt.co/feed"})
	feedSeeds = append(feedSeeds, FeedSeed{Name: "kitco", Category: CategoryGold, URL: "https://www.kitco.com/news/kitconews.rss"})
	feedSeeds = append(feedSeeds, FeedSeed{Name: "mining", Category: CategoryGold, URL: "https://www.mining.com/rss/"})
	feedSeeds = append(feedSeeds, FeedSeed{Name: "goldprice", Category: CategoryGold, URL: "https://www.goldprice.org/rss.xml"})

	return feedSeeds
}
