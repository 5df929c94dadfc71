// Package sample provides a fixed demo batch of product reviews for
// the report CLI and end-to-end tests.
package sample

import "github.com/reviewlens/reviewlens/pkg/reviewlens"

// Reviews returns the demo batch.
func Reviews() []reviewlens.Review {
	return []reviewlens.Review{
		reviewlens.Rated("Absolutely love this product! The quality is excellent and it arrived quickly. Very comfortable and easy to use. Highly recommend to anyone looking for great value.", 5),
		reviewlens.Rated("Good product overall. The design is beautiful and build quality is solid. Only complaint is that it's a bit expensive, but you get what you pay for.", 4),
		reviewlens.Rated("Best purchase I've made in a long time! So happy with the performance. Fast, reliable, and the customer service was outstanding when I had questions.", 5),
		reviewlens.Rated("Disappointed with this purchase. The product broke after just two weeks. Poor durability and not worth the price. Customer service was slow to respond.", 2),
		reviewlens.Rated("It's okay. Does what it's supposed to do but nothing special. The material feels a bit cheap. Shipping was fast though.", 3),
		reviewlens.Rated("Excellent quality! Very durable and sturdy construction. Love the design and it's super comfortable. Worth every penny.", 5),
		reviewlens.Rated("Terrible product. Broke on first use. Cheap materials and poor construction. Complete waste of money. Would not recommend to anyone.", 1),
		reviewlens.Rated("Pretty good! The performance exceeded my expectations. Only minor issue is the packaging could be better. Otherwise very satisfied.", 4),
		reviewlens.Rated("Amazing! The build quality is superb and it looks beautiful. Very easy to set up and use. Customer service helped me quickly when I had a question.", 5),
		reviewlens.Rated("Average product. It works fine but nothing impressive. The price is reasonable but I expected better quality for the cost.", 3),
		reviewlens.Rated("Very pleased with this purchase. Good value for money. The design is nice and it's quite comfortable. Delivery was on time.", 4),
		reviewlens.Rated("Not happy with this. The quality is poor and it feels flimsy. Had issues with delivery being delayed. Customer support wasn't helpful.", 2),
	}
}
