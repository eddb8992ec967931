package repository

import "github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"

// SeedProducts returns the demo catalog loaded at startup.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Wireless Headphones", PriceCents: 9999, Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop"},
		{ID: "2", Name: "Smartphone Case", PriceCents: 2499, Image: "https://images.unsplash.com/photo-1601593346740-925612772716?w=300&h=300&fit=crop"},
		{ID: "3", Name: "Bluetooth Speaker", PriceCents: 7999, Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=300&h=300&fit=crop"},
		{ID: "4", Name: "USB-C Cable", PriceCents: 1999, Image: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=300&h=300&fit=crop"},
		{ID: "5", Name: "Laptop Stand", PriceCents: 4999, Image: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=300&h=300&fit=crop"},
		{ID: "6", Name: "Wireless Mouse", PriceCents: 3499, Image: "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?w=300&h=300&fit=crop"},
		{ID: "7", Name: "Mechanical Keyboard", PriceCents: 8999, Image: "https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=300&h=300&fit=crop"},
		{ID: "8", Name: "4K Monitor", PriceCents: 29999, Image: "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=300&h=300&fit=crop"},
	}
}
