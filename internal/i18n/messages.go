package i18n

// Message keys.
const (
	KeyStartGreeting       = "start_greeting"
	KeyChooseLanguage      = "choose_language"
	KeyLanguageSelected    = "language_selected"
	KeyProfileIncomplete   = "profile_incomplete"
	KeyConsultationStart   = "consultation_start"
	KeyProfileSetup        = "profile_setup"
	KeyAnalyzingSymptoms   = "analyzing_symptoms"
	KeyRecommendation      = "recommendation_header"
	KeyDoctorReferral      = "doctor_recommendation"
	KeyAnythingElse        = "anything_else"
	KeyEnterAge            = "enter_age"
	KeyInvalidAgeRange     = "invalid_age_range"
	KeyInvalidAgeNumber    = "invalid_age_number"
	KeySelectGender        = "select_gender"
	KeyEnterWeight         = "enter_weight"
	KeyInvalidWeightRange  = "invalid_weight_range"
	KeyInvalidWeightNumber = "invalid_weight_number"
	KeyEnterHeight         = "enter_height"
	KeyInvalidHeightRange  = "invalid_height_range"
	KeyInvalidHeightNumber = "invalid_height_number"
	KeyEnterBloodGroup     = "enter_blood_group"
	KeyEnterAllergies      = "enter_allergies"
	KeyEnterDiseases       = "enter_diseases"
	KeyEnterMedications    = "enter_medications"
	KeyEnterEmergency      = "enter_emergency_contact"
	KeyProfileSaveFailed   = "profile_save_failed"
	KeyProfileCompleted    = "profile_completed"
	KeyNotProvided         = "not_provided"
	KeyIdleFallback        = "idle_fallback"
	KeyFlowInterrupted     = "flow_interrupted"
	KeyFlowCancelled       = "flow_cancelled"
	KeyHelp                = "help"
	KeyHistoryEmpty        = "history_empty"
	KeyHistoryHeader       = "history_header"
	KeyHistoryDate         = "history_date"
	KeyHistorySymptoms     = "history_symptoms"
	KeyHistoryReferral     = "history_referral"
	KeyCardTitle           = "profile_card_title"
	KeyCardBasic           = "profile_card_basic"
	KeyCardName            = "profile_card_name"
	KeyCardAge             = "profile_card_age"
	KeyCardGender          = "profile_card_gender"
	KeyCardWeight          = "profile_card_weight"
	KeyCardHeight          = "profile_card_height"
	KeyCardBMI             = "profile_card_bmi"
	KeyCardBloodGroup      = "profile_card_blood_group"
	KeyCardAllergies       = "profile_card_allergies"
	KeyCardDiseases        = "profile_card_diseases"
	KeyCardMedications     = "profile_card_medications"
	KeyCardEmergency       = "profile_card_emergency"
	KeyGenderMale          = "gender_male"
	KeyGenderFemale        = "gender_female"
	KeyGenderOther         = "gender_other"
	KeyBMIUnderweight      = "bmi_underweight"
	KeyBMINormal           = "bmi_normal"
	KeyBMIOverweight       = "bmi_overweight"
	KeyBMIObese            = "bmi_obese"
	KeySafetyBlocked       = "safety_blocked"
	KeyAIError             = "ai_error"
	KeyAIUnparseable       = "ai_unparseable"
)

var messages = map[string]map[string]string{
	English: {
		KeyStartGreeting: "🙏 Namaste %s! Welcome to Arogya-Sakhi! 🏥\n\n" +
			"I'm your personal health assistant powered by AI. I can help you with:\n\n" +
			"🔸 Health consultations and symptom analysis\n" +
			"🔸 Home remedies and medication suggestions\n" +
			"🔸 First aid guidance\n" +
			"🔸 Doctor recommendations when needed\n" +
			"🔸 Health profile management\n\n" +
			"⚠️ IMPORTANT: I provide general health guidance only. Always consult healthcare professionals for serious conditions.\n\n" +
			"Choose your language / भाषा चुनें:",
		KeyChooseLanguage:    "Choose your language / भाषा चुनें:",
		KeyLanguageSelected:  "✅ Language set to English. Let's get started with your health journey!",
		KeyProfileIncomplete: "⚠️ Please complete your profile first for accurate health recommendations. Use '📝 Update Profile' option.",
		KeyConsultationStart: "🩺 Health Consultation Started\n\n" +
			"Please describe your current symptoms in detail. Include:\n" +
			"• What symptoms are you experiencing?\n" +
			"• When did they start?\n" +
			"• How severe are they (1-10)?\n" +
			"• Any triggers you noticed?\n\n" +
			"Type your symptoms below:",
		KeyProfileSetup: "📝 Profile Setup\n\n" +
			"Let's set up your health profile for personalized recommendations.\n\n" +
			"First, please enter your full name:",
		KeyAnalyzingSymptoms: "🔄 Analyzing your symptoms... Please wait.",
		KeyRecommendation:    "🩺 HEALTH RECOMMENDATION\n\n",
		KeyDoctorReferral: "🚨 DOCTOR RECOMMENDATION\n\n" +
			"Based on your symptoms, I recommend consulting a healthcare professional.\n\n" +
			"📞 Emergency Numbers:\n" +
			"• Emergency: 108\n" +
			"• Ambulance: 102\n" +
			"• Medical Helpline: 104\n\n" +
			"🏥 Find nearby doctors and hospitals using Google Maps or Practo app.",
		KeyAnythingElse:        "Is there anything else I can help you with?",
		KeyEnterAge:            "Great! Now please enter your age:",
		KeyInvalidAgeRange:     "Please enter a valid age between 1 and 120:",
		KeyInvalidAgeNumber:    "Please enter a valid number for age:",
		KeySelectGender:        "Please select your gender:\n1. Male\n2. Female\n3. Other\n\nType 1, 2, or 3:",
		KeyEnterWeight:         "Please enter your weight in kg (e.g., 65.5):",
		KeyInvalidWeightRange:  "Please enter a valid weight between 10 and 300 kg:",
		KeyInvalidWeightNumber: "Please enter a valid number for weight:",
		KeyEnterHeight:         "Please enter your height in cm (e.g., 170):",
		KeyInvalidHeightRange:  "Please enter a valid height between 50 and 250 cm:",
		KeyInvalidHeightNumber: "Please enter a valid number for height:",
		KeyEnterBloodGroup:     "Please enter your blood group (e.g., A+, B-, O+, AB-) or type 'skip':",
		KeyEnterAllergies:      "Do you have any allergies? Please list them separated by commas, or type 'none':",
		KeyEnterDiseases:       "Do you have any previous diseases or medical conditions? Please list them separated by commas, or type 'none':",
		KeyEnterMedications:    "Are you currently taking any medications? Please list them separated by commas, or type 'none':",
		KeyEnterEmergency:      "Please provide an emergency contact number, or type 'skip':",
		KeyProfileSaveFailed:   "Sorry, there was an error saving your profile. Please try again.",
		KeyProfileCompleted: "✅ Profile completed successfully!\n\n" +
			"📊 Your Health Summary:\n" +
			"• Name: %s\n" +
			"• Age: %d years\n" +
			"• Gender: %s\n" +
			"• BMI: %.1f (%s)\n" +
			"• Blood Group: %s\n\n" +
			"You can now use the Health Consultation feature for personalized recommendations!",
		KeyNotProvided:     "Not provided",
		KeyIdleFallback:    "I didn't understand that. Please use the menu options or type /start to begin.",
		KeyFlowInterrupted: "⚠️ Your previous step was interrupted and could not be resumed. Please start again from the menu.",
		KeyFlowCancelled:   "❎ Cancelled. What would you like to do next?",
		KeyHelp: "ℹ️ AROGYA-SAKHI HELP\n\n" +
			"🏥 Health Consultation:\n" +
			"Get AI-powered health recommendations based on your symptoms and profile.\n\n" +
			"👤 My Profile:\n" +
			"View your complete health profile.\n\n" +
			"📝 Update Profile:\n" +
			"Add or update your health information for better recommendations.\n\n" +
			"📊 Health History:\n" +
			"View your previous consultations.\n\n" +
			"⚠️ IMPORTANT DISCLAIMERS:\n" +
			"• This bot provides general health guidance only\n" +
			"• Always consult healthcare professionals for serious conditions\n" +
			"• In emergencies, call 108 immediately\n" +
			"• This is not a substitute for professional medical advice\n\n" +
			"📞 Emergency Numbers:\n" +
			"• Emergency: 108\n" +
			"• Ambulance: 102\n" +
			"• Medical Helpline: 104",
		KeyHistoryEmpty:    "📊 No health consultations found. Start your first consultation using '🏥 Health Consultation'.",
		KeyHistoryHeader:   "📊 YOUR HEALTH HISTORY\n\n",
		KeyHistoryDate:     "📅 %s\n",
		KeyHistorySymptoms: "🔸 Symptoms: %s\n",
		KeyHistoryReferral: "⚠️ Doctor consultation was recommended\n",
		KeyCardTitle:       "👤 YOUR HEALTH PROFILE\n\n",
		KeyCardBasic:       "📋 Basic Information:\n",
		KeyCardName:        "• Name: %s\n",
		KeyCardAge:         "• Age: %d years\n",
		KeyCardGender:      "• Gender: %s\n",
		KeyCardWeight:      "• Weight: %s kg\n",
		KeyCardHeight:      "• Height: %s cm\n",
		KeyCardBMI:         "• BMI: %.1f (%s)\n",
		KeyCardBloodGroup:  "• Blood Group: %s\n",
		KeyCardAllergies:   "\n🚫 Allergies:\n",
		KeyCardDiseases:    "\n🏥 Previous Diseases:\n",
		KeyCardMedications: "\n💊 Current Medications:\n",
		KeyCardEmergency:   "\n📞 Emergency Contact: %s",
		KeyGenderMale:      "Male",
		KeyGenderFemale:    "Female",
		KeyGenderOther:     "Other",
		KeyBMIUnderweight:  "Underweight",
		KeyBMINormal:       "Normal",
		KeyBMIOverweight:   "Overweight",
		KeyBMIObese:        "Obese",
		KeySafetyBlocked:   "Response was blocked due to safety filters. Please rephrase your symptoms or consult a healthcare professional directly.",
		KeyAIUnparseable:   "Unable to process the AI response. Please try again.",
		KeyAIError: "I'm experiencing technical difficulties. Please try again later or consult a healthcare professional for serious symptoms.\n\n" +
			"Emergency number: 108\n" +
			"Error: %s",
	},
	Hindi: {
		KeyStartGreeting: "🙏 नमस्ते %s! आरोग्य-सखी में आपका स्वागत है! 🏥\n\n" +
			"मैं AI द्वारा संचालित आपका व्यक्तिगत स्वास्थ्य सहायक हूं। मैं इनमें आपकी मदद कर सकता हूं:\n\n" +
			"🔸 स्वास्थ्य परामर्श और लक्षण विश्लेषण\n" +
			"🔸 घरेलू उपचार और दवा सुझाव\n" +
			"🔸 प्राथमिक चिकित्सा मार्गदर्शन\n" +
			"🔸 आवश्यकता होने पर डॉक्टर की सिफारिश\n" +
			"🔸 स्वास्थ्य प्रोफाइल प्रबंधन\n\n" +
			"⚠️ महत्वपूर्ण: मैं केवल सामान्य स्वास्थ्य मार्गदर्शन देता हूं। गंभीर स्थितियों के लिए हमेशा स्वास्थ्य पेशेवरों से सलाह लें।\n\n" +
			"Choose your language / भाषा चुनें:",
		KeyLanguageSelected:  "✅ भाषा हिंदी में सेट की गई। आइए अपनी स्वास्थ्य यात्रा शुरू करते हैं!",
		KeyProfileIncomplete: "⚠️ सटीक स्वास्थ्य सिफारिशों के लिए कृपया पहले अपनी प्रोफाइल पूरी करें। '📝 प्रोफाइल अपडेट करें' विकल्प का उपयोग करें।",
		KeyConsultationStart: "🩺 स्वास्थ्य परामर्श शुरू\n\n" +
			"कृपया अपने वर्तमान लक्षणों का विस्तार से वर्णन करें। शामिल करें:\n" +
			"• आप कौन से लक्षण महसूस कर रहे हैं?\n" +
			"• ये कब शुरू हुए?\n" +
			"• ये कितने गंभीर हैं (1-10)?\n" +
			"• कोई ट्रिगर जो आपने देखे?\n\n" +
			"नीचे अपने लक्षण लिखें:",
		KeyProfileSetup: "📝 प्रोफाइल सेटअप\n\n" +
			"व्यक्तिगत सिफारिशों के लिए आइए आपकी स्वास्थ्य प्रोफाइल सेट करते हैं।\n\n" +
			"पहले, कृपया अपना पूरा नाम दर्ज करें:",
		KeyAnalyzingSymptoms: "🔄 आपके लक्षणों का विश्लेषण कर रहे हैं... कृपया प्रतीक्षा करें।",
		KeyRecommendation:    "🩺 स्वास्थ्य सिफारिश\n\n",
		KeyDoctorReferral: "🚨 डॉक्टर की सिफारिश\n\n" +
			"आपके लक्षणों के आधार पर, मैं किसी स्वास्थ्य पेशेवर से सलाह लेने की सिफारिश करता हूं।\n\n" +
			"📞 आपातकालीन नंबर:\n" +
			"• आपातकाल: 108\n" +
			"• एम्बुलेंस: 102\n" +
			"• चिकित्सा हेल्पलाइन: 104\n\n" +
			"🏥 Google Maps या Practo ऐप का उपयोग करके नजदीकी डॉक्टर और अस्पताल खोजें।",
		KeyAnythingElse:        "क्या कोई और चीज़ है जिसमें मैं आपकी मदद कर सकूं?",
		KeyEnterAge:            "बहुत बढ़िया! अब कृपया अपनी उम्र दर्ज करें:",
		KeyInvalidAgeRange:     "कृपया 1 से 120 के बीच एक मान्य उम्र दर्ज करें:",
		KeyInvalidAgeNumber:    "कृपया उम्र के लिए एक मान्य संख्या दर्ज करें:",
		KeySelectGender:        "कृपया अपना लिंग चुनें:\n1. पुरुष\n2. महिला\n3. अन्य\n\n1, 2, या 3 टाइप करें:",
		KeyEnterWeight:         "कृपया अपना वजन किलो में दर्ज करें (जैसे, 65.5):",
		KeyInvalidWeightRange:  "कृपया 10 से 300 किलो के बीच एक मान्य वजन दर्ज करें:",
		KeyInvalidWeightNumber: "कृपया वजन के लिए एक मान्य संख्या दर्ज करें:",
		KeyEnterHeight:         "कृपया अपनी ऊंचाई सेमी में दर्ज करें (जैसे, 170):",
		KeyInvalidHeightRange:  "कृपया 50 से 250 सेमी के बीच एक मान्य ऊंचाई दर्ज करें:",
		KeyInvalidHeightNumber: "कृपया ऊंचाई के लिए एक मान्य संख्या दर्ज करें:",
		KeyEnterBloodGroup:     "कृपया अपना ब्लड ग्रुप दर्ज करें (जैसे, A+, B-, O+, AB-) या 'skip' टाइप करें:",
		KeyEnterAllergies:      "क्या आपको कोई एलर्जी है? कृपया उन्हें कॉमा से अलग करके लिस्ट करें, या 'none' टाइप करें:",
		KeyEnterDiseases:       "क्या आपको कोई पुरानी बीमारियां या चिकित्सा स्थितियां हैं? कृपया उन्हें कॉमा से अलग करके लिस्ट करें, या 'none' टाइप करें:",
		KeyEnterMedications:    "क्या आप वर्तमान में कोई दवाएं ले रहे हैं? कृपया उन्हें कॉमा से अलग करके लिस्ट करें, या 'none' टाइप करें:",
		KeyEnterEmergency:      "कृपया एक आपातकालीन संपर्क नंबर प्रदान करें, या 'skip' टाइप करें:",
		KeyProfileSaveFailed:   "क्षमा करें, आपकी प्रोफाइल सहेजने में त्रुटि हुई। कृपया पुनः प्रयास करें।",
		KeyProfileCompleted: "✅ प्रोफाइल सफलतापूर्वक पूरी हुई!\n\n" +
			"📊 आपका स्वास्थ्य सारांश:\n" +
			"• नाम: %s\n" +
			"• उम्र: %d साल\n" +
			"• लिंग: %s\n" +
			"• BMI: %.1f (%s)\n" +
			"• ब्लड ग्रुप: %s\n\n" +
			"अब आप व्यक्तिगत सिफारिशों के लिए स्वास्थ्य परामर्श सुविधा का उपयोग कर सकते हैं!",
		KeyNotProvided:     "उपलब्ध नहीं",
		KeyIdleFallback:    "मैं समझ नहीं पाया। कृपया मेनू विकल्पों का उपयोग करें या शुरू करने के लिए /start टाइप करें।",
		KeyFlowInterrupted: "⚠️ आपका पिछला चरण बाधित हो गया और जारी नहीं रखा जा सका। कृपया मेनू से फिर से शुरू करें।",
		KeyFlowCancelled:   "❎ रद्द किया गया। आगे आप क्या करना चाहेंगे?",
		KeyHelp: "ℹ️ आरोग्य-सखी सहायता\n\n" +
			"🏥 स्वास्थ्य परामर्श:\n" +
			"आपके लक्षणों और प्रोफाइल के आधार पर AI-संचालित स्वास्थ्य सिफारिशें प्राप्त करें।\n\n" +
			"👤 मेरी प्रोफाइल:\n" +
			"अपनी पूरी स्वास्थ्य प्रोफाइल देखें।\n\n" +
			"📝 प्रोफाइल अपडेट करें:\n" +
			"बेहतर सिफारिशों के लिए अपनी स्वास्थ्य जानकारी जोड़ें या अपडेट करें।\n\n" +
			"📊 स्वास्थ्य इतिहास:\n" +
			"अपने पिछले परामर्श देखें।\n\n" +
			"⚠️ महत्वपूर्ण अस्वीकरण:\n" +
			"• यह बॉट केवल सामान्य स्वास्थ्य मार्गदर्शन प्रदान करता है\n" +
			"• गंभीर स्थितियों के लिए हमेशा स्वास्थ्य पेशेवरों से सलाह लें\n" +
			"• आपातकाल में तुरंत 108 पर कॉल करें\n" +
			"• यह पेशेवर चिकित्सा सलाह का विकल्प नहीं है\n\n" +
			"📞 आपातकालीन नंबर:\n" +
			"• आपातकाल: 108\n" +
			"• एम्बुलेंस: 102\n" +
			"• चिकित्सा हेल्पलाइन: 104",
		KeyHistoryEmpty:    "📊 कोई स्वास्थ्य परामर्श नहीं मिला। '🏥 स्वास्थ्य परामर्श' का उपयोग करके अपना पहला परामर्श शुरू करें।",
		KeyHistoryHeader:   "📊 आपका स्वास्थ्य इतिहास\n\n",
		KeyHistorySymptoms: "🔸 लक्षण: %s\n",
		KeyHistoryReferral: "⚠️ डॉक्टर परामर्श की सिफारिश की गई थी\n",
		KeyCardTitle:       "👤 आपकी स्वास्थ्य प्रोफाइल\n\n",
		KeyCardBasic:       "📋 मूल जानकारी:\n",
		KeyCardName:        "• नाम: %s\n",
		KeyCardAge:         "• उम्र: %d साल\n",
		KeyCardGender:      "• लिंग: %s\n",
		KeyCardWeight:      "• वजन: %s किलो\n",
		KeyCardHeight:      "• ऊंचाई: %s सेमी\n",
		KeyCardBloodGroup:  "• ब्लड ग्रुप: %s\n",
		KeyCardAllergies:   "\n🚫 एलर्जी:\n",
		KeyCardDiseases:    "\n🏥 पिछली बीमारियां:\n",
		KeyCardMedications: "\n💊 वर्तमान दवाएं:\n",
		KeyCardEmergency:   "\n📞 आपातकालीन संपर्क: %s",
		KeyGenderMale:      "पुरुष",
		KeyGenderFemale:    "महिला",
		KeyGenderOther:     "अन्य",
		KeyBMIUnderweight:  "कम वजन",
		KeyBMINormal:       "सामान्य",
		KeyBMIOverweight:   "अधिक वजन",
		KeyBMIObese:        "मोटापा",
		KeySafetyBlocked:   "सुरक्षा फ़िल्टर के कारण उत्तर रोक दिया गया। कृपया अपने लक्षण दूसरे शब्दों में लिखें या सीधे किसी स्वास्थ्य पेशेवर से सलाह लें।",
		KeyAIUnparseable:   "AI उत्तर को संसाधित नहीं किया जा सका। कृपया पुनः प्रयास करें।",
		KeyAIError: "मुझे तकनीकी समस्या हो रही है। कृपया बाद में पुनः प्रयास करें या गंभीर लक्षणों के लिए तुरंत डॉक्टर से संपर्क करें।\n\n" +
			"आपातकालीन नंबर: 108\n" +
			"त्रुटि: %s",
	},
}
