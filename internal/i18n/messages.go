package i18n

// messages holds the server-side strings per language. Keys follow the
// storefront's dotted naming so the front-end can share them.
var messages = map[Lang]map[string]string{
	English: {
		"cart.title":            "Shopping Cart",
		"cart.empty":            "Your cart is empty",
		"cart.subtotal":         "Subtotal",
		"cart.checkout":         "Checkout",
		"cart.continueShopping": "Continue Shopping",

		"checkout.shipping":       "Shipping",
		"checkout.freeShipping":   "Free",
		"checkout.total":          "Total",
		"checkout.success":        "Thank you! Your order has been placed.",
		"checkout.emptyCart":      "Your cart is empty",
		"checkout.failed":         "We could not place your order. Please try again.",
		"checkout.payment.cod":    "Cash on Delivery",
		"checkout.payment.bank":   "Bank Transfer",
		"checkout.unknownProduct": "Unknown Product",

		"order.status.pending":    "Pending",
		"order.status.processing": "Processing",
		"order.status.shipped":    "Shipped",
		"order.status.delivered":  "Delivered",
		"order.status.cancelled":  "Cancelled",

		"tracking.notFound":              "Order not found",
		"tracking.notFoundDesc":          "Please check the order number and try again",
		"tracking.cancelled":             "This order has been cancelled",
		"tracking.stage.pending":         "Order Placed",
		"tracking.stage.pending.desc":    "Your order has been received",
		"tracking.stage.processing":      "Processing",
		"tracking.stage.processing.desc": "We are preparing your order",
		"tracking.stage.shipped":         "Shipped",
		"tracking.stage.shipped.desc":    "Your order is on its way",
		"tracking.stage.delivered":       "Delivered",
		"tracking.stage.delivered.desc":  "Order delivered successfully",

		"product.notFound":     "Product not found",
		"product.sizeNotFound": "Size not available for this product",
		"shop.men":             "Men's Collection",
		"shop.women":           "Women's Collection",
		"shop.unisex":          "Unisex Collection",

		"validation.firstName.min": "First name must be at least 2 characters",
		"validation.firstName.max": "First name must be less than 50 characters",
		"validation.lastName.min":  "Last name must be at least 2 characters",
		"validation.lastName.max":  "Last name must be less than 50 characters",
		"validation.email.email":   "Please enter a valid email address",
		"validation.email.max":     "Email must be less than 255 characters",
		"validation.phone.min":     "Phone number must be at least 8 characters",
		"validation.phone.max":     "Phone number must be less than 20 characters",
		"validation.phone.phone":   "Please enter a valid phone number",
		"validation.address.min":   "Address must be at least 10 characters",
		"validation.address.max":   "Address must be less than 500 characters",
		"validation.city.min":      "City must be at least 2 characters",
		"validation.city.max":      "City must be less than 100 characters",
		"validation.country.min":   "Please select a country",
		"validation.country.max":   "Invalid country code",
		"validation.notes.max":     "Notes must be less than 1000 characters",
		"validation.paymentMethod": "Please choose a payment method",

		"common.error":        "Error",
		"common.success":      "Success",
		"common.serverError":  "Something went wrong. Please try again.",
		"common.unauthorised": "Please sign in to continue",
		"common.badRequest":   "The request could not be read",

		"validation.failed":    "Please correct the highlighted fields",
		"cart.invalidQuantity": "Quantity must be between 1 and 99",
		"language.invalid":     "Language must be en or ar",
		"region.notFound":      "Country not found",
	},
	Arabic: {
		"cart.title":            "سلة التسوق",
		"cart.empty":            "سلة التسوق فارغة",
		"cart.subtotal":         "المجموع الفرعي",
		"cart.checkout":         "إتمام الشراء",
		"cart.continueShopping": "متابعة التسوق",

		"checkout.shipping":       "الشحن",
		"checkout.freeShipping":   "مجاني",
		"checkout.total":          "الإجمالي",
		"checkout.success":        "شكراً لك! تم تقديم طلبك بنجاح.",
		"checkout.emptyCart":      "سلة التسوق فارغة",
		"checkout.failed":         "تعذر إتمام طلبك. يرجى المحاولة مرة أخرى.",
		"checkout.payment.cod":    "الدفع عند الاستلام",
		"checkout.payment.bank":   "تحويل بنكي",
		"checkout.unknownProduct": "منتج غير معروف",

		"order.status.pending":    "قيد الانتظار",
		"order.status.processing": "قيد التجهيز",
		"order.status.shipped":    "تم الشحن",
		"order.status.delivered":  "تم التوصيل",
		"order.status.cancelled":  "ملغي",

		"tracking.notFound":              "لم يتم العثور على الطلب",
		"tracking.notFoundDesc":          "يرجى التحقق من رقم الطلب والمحاولة مرة أخرى",
		"tracking.cancelled":             "تم إلغاء هذا الطلب",
		"tracking.stage.pending":         "تم الطلب",
		"tracking.stage.pending.desc":    "تم استلام طلبك",
		"tracking.stage.processing":      "قيد التجهيز",
		"tracking.stage.processing.desc": "نحن نجهز طلبك",
		"tracking.stage.shipped":         "تم الشحن",
		"tracking.stage.shipped.desc":    "طلبك في الطريق",
		"tracking.stage.delivered":       "تم التوصيل",
		"tracking.stage.delivered.desc":  "تم توصيل الطلب بنجاح",

		"product.notFound":     "المنتج غير موجود",
		"product.sizeNotFound": "هذا الحجم غير متوفر لهذا المنتج",
		"shop.men":             "مجموعة الرجال",
		"shop.women":           "مجموعة النساء",
		"shop.unisex":          "مجموعة للجنسين",

		"validation.firstName.min": "يجب أن يتكون الاسم الأول من حرفين على الأقل",
		"validation.firstName.max": "يجب أن يكون الاسم الأول أقل من 50 حرفاً",
		"validation.lastName.min":  "يجب أن يتكون اسم العائلة من حرفين على الأقل",
		"validation.lastName.max":  "يجب أن يكون اسم العائلة أقل من 50 حرفاً",
		"validation.email.email":   "يرجى إدخال بريد إلكتروني صحيح",
		"validation.email.max":     "يجب أن يكون البريد الإلكتروني أقل من 255 حرفاً",
		"validation.phone.min":     "يجب أن يتكون رقم الهاتف من 8 أحرف على الأقل",
		"validation.phone.max":     "يجب أن يكون رقم الهاتف أقل من 20 حرفاً",
		"validation.phone.phone":   "يرجى إدخال رقم هاتف صحيح",
		"validation.address.min":   "يجب أن يتكون العنوان من 10 أحرف على الأقل",
		"validation.address.max":   "يجب أن يكون العنوان أقل من 500 حرف",
		"validation.city.min":      "يجب أن يتكون اسم المدينة من حرفين على الأقل",
		"validation.city.max":      "يجب أن يكون اسم المدينة أقل من 100 حرف",
		"validation.country.min":   "يرجى اختيار الدولة",
		"validation.country.max":   "رمز الدولة غير صالح",
		"validation.notes.max":     "يجب أن تكون الملاحظات أقل من 1000 حرف",
		"validation.paymentMethod": "يرجى اختيار طريقة الدفع",

		"common.error":        "خطأ",
		"common.success":      "نجاح",
		"common.serverError":  "حدث خطأ ما. يرجى المحاولة مرة أخرى.",
		"common.unauthorised": "يرجى تسجيل الدخول للمتابعة",
		"common.badRequest":   "تعذرت قراءة الطلب",

		"validation.failed":    "يرجى تصحيح الحقول المحددة",
		"cart.invalidQuantity": "يجب أن تكون الكمية بين 1 و 99",
		"language.invalid":     "يجب أن تكون اللغة en أو ar",
		"region.notFound":      "الدولة غير موجودة",
	},
}
