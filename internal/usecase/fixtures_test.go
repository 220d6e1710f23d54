package usecase

const productPageHTML = `<!DOCTYPE html>
<html lang="fa"><head>
<meta property="og:title" content="OG Deck Oven">
<meta property="og:description" content="OG description">
<meta property="og:image" content="https://mbico.ir/wp-content/uploads/og.jpg">
<script type="application/ld+json">{"@type":"Product","description":"LD description"}</script>
</head><body>
<nav class="woocommerce-breadcrumb"><a href="https://mbico.ir">Home</a> / <a href="https://mbico.ir/products/">Products</a> / <a href="https://mbico.ir/product-category/ovens/">Ovens</a> / Deck</nav>
<section id="product-hero" class="hero">
  <img src="data:image/svg+xml,x" data-lazy-src="/wp-content/uploads/hero.jpg" alt="Hero &amp; oven">
  <span class="hero-english">Deck Oven</span>
  <h1>فر طبقاتی</h1>
  <p class="hero-tagline">Bake more</p>
  <video autoplay muted><source src="/wp-content/uploads/hero.mp4" type="video/mp4"></video>
  <a class="hero-catalog btn" href="/wp-content/uploads/catalog.pdf">Download catalog</a>
</section>
<div class="summary">
  <h1 class="product_title entry-title">Deck Oven MB</h1>
  <p class="price"><span class="amount">120,000,000&nbsp;تومان</span></p>
  <div class="woocommerce-product-details__short-description"><p>Short <strong>description</strong></p><script>track()</script></div>
  <form class="cart"><button type="submit" name="add-to-cart" value="77" class="single_add_to_cart_button">Buy</button></form>
</div>
<div class="product-highlight"><p>Stone deck</p></div>
<nav class="product-tabs"><a href="#moarefi">معرفی</a><a href="#moshakhasat">مشخصات</a><a href="#videos">ویدیوها</a><a href="#faq">سوالات</a></nav>
<section id="moarefi"><h2>Introduction</h2><p>Intro text</p></section>
<section id="moshakhasat"><div class="spec-models"><div class="spec-model-card"><p>MB-1</p><p><span>Power</span><strong>5 kW</strong></p></div></div></section>
<section id="videos"><p>Video tour</p><a class="open-video" href="https://aparat.com/v/abc">Watch</a></section>
<section id="faq"><a class="elementor-accordion-title" href=""><span>Warranty?</span></a><div class="elementor-tab-content">Two years</div></section>
</body></html>`

const sparseProductHTML = `<html><head>
<meta property="og:description" content="OG only">
<script type="application/ld+json">{"@graph":[{"@type":"WebPage"},{"@type":"Product","description":"From LD"}]}</script>
</head><body>
<div class="woocommerce-product-gallery__image"><a href="/full.jpg"><img src="/thumb.jpg" alt=""></a></div>
</body></html>`

const blogPageHTML = `<html><head>
<meta property="og:title" content="OG Blog">
<meta property="article:published_time" content="2024-05-01T08:00:00+00:00">
</head><body>
<nav class="rank-math-breadcrumb"><a href="/">Home</a> » <a href="/blog/category/news/">News</a> » Choosing</nav>
<h1 class="entry-title">Choosing an oven</h1>
<span class="byline"><a rel="author" href="/author/ali/">Ali</a></span>
<div class="entry-content">
  <p>First paragraph.</p>
  <figure><img src="/up/fig.jpg" alt="Fig"></figure>
  <h2>Tips</h2>
  <ul><li>One</li><li>Two</li></ul>
  <p>First paragraph.</p>
  <div class="share"><a href="#">Share</a></div>
</div>
</body></html>`

const categoryPageHTML = `<html><head>
<link rel="next" href="https://mbico.ir/product-category/ovens/page/3/">
<meta property="og:description" content="Ovens OG">
</head><body>
<h1 class="page-title">Ovens</h1>
<ul class="products">
<li><a href="https://mbico.ir/products/oven-a/" class="woocommerce-LoopProduct-link" aria-label="Oven A"><img data-lazy-src="https://mbico.ir/up/a.jpg" src="data:image/svg+xml,x"></a></li>
<li><a href="https://mbico.ir/products/oven-b/" class="woocommerce-LoopProduct-link" aria-label="Oven B"><img data-lazy-src="https://mbico.ir/up/b.jpg" src="data:image/svg+xml,x"></a></li>
</ul>
</body></html>`

const homePageHTML = `<html><body><h2>محصولات منتخب؛ راهکاری حرفه` + "\u200c" + `ای برای نیازهای شما</h2>
<div class="carousel">
<a href="https://mbico.ir/products/mixer/" aria-label="Spiral &amp; mixer"><img data-lazy-src="https://mbico.ir/up/mixer.jpg"></a>
<a href="https://mbico.ir/products/slicer/" aria-label="Slicer"><noscript><img src="https://mbico.ir/up/slicer.jpg"></noscript></a>
</div></body></html>`
